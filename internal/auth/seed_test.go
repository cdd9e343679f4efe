package auth

import (
	"context"
	"testing"
)

func TestSeedAdmin_EmptyStore(t *testing.T) {
	repo := newFakeUserRepo()

	if err := SeedAdmin(context.Background(), repo, testLogger()); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	admin, err := repo.GetByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if admin.Authority != "USER,ADMIN" {
		t.Errorf("Authority = %q, want %q", admin.Authority, "USER,ADMIN")
	}
	if admin.PasswordHash == "" {
		t.Error("admin has empty password hash")
	}
}

func TestSeedAdmin_ExistingUsers(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["john_doe"] = &User{Username: "john_doe"}

	if err := SeedAdmin(context.Background(), repo, testLogger()); err != nil {
		t.Fatalf("SeedAdmin() error = %v", err)
	}

	if _, err := repo.GetByUsername(context.Background(), "admin"); err == nil {
		t.Error("SeedAdmin() created an admin in a non-empty store")
	}
}
