package auth

import (
	"reflect"
	"testing"
)

func TestResolveAuthorities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Authority
	}{
		{"single authority", "USER", []Authority{"ROLE_USER"}},
		{"multiple authorities", "USER,ADMIN", []Authority{"ROLE_USER", "ROLE_ADMIN"}},
		{"whitespace around entries", " USER , ADMIN ", []Authority{"ROLE_USER", "ROLE_ADMIN"}},
		{"empty string", "", []Authority{}},
		{"only commas", ",,,", []Authority{}},
		{"empty entry skipped", "USER,,ADMIN", []Authority{"ROLE_USER", "ROLE_ADMIN"}},
		{"trailing comma", "USER,", []Authority{"ROLE_USER"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveAuthorities(tt.input)
			if got == nil {
				t.Fatal("ResolveAuthorities() returned nil, want non-nil slice")
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ResolveAuthorities(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestHasAuthority(t *testing.T) {
	granted := []Authority{"ROLE_USER", "ROLE_ADMIN"}

	if !HasAuthority(granted, "ROLE_ADMIN") {
		t.Error("HasAuthority() = false for granted authority")
	}
	if HasAuthority(granted, "ROLE_AUDITOR") {
		t.Error("HasAuthority() = true for ungranted authority")
	}
	if HasAuthority(nil, "ROLE_USER") {
		t.Error("HasAuthority() = true on nil set")
	}
}
