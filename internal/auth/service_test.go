package auth

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService(t *testing.T) (*Service, *fakeUserRepo) {
	t.Helper()

	repo := newFakeUserRepo()
	tokens := NewTokenProvider(testSecret, time.Hour)

	return NewService(repo, tokens, testLogger()), repo
}

func TestService_Signup(t *testing.T) {
	tests := []struct {
		name       string
		username   string
		password   string
		email      string
		wantOK     bool
		wantReason SignupReason
	}{
		{"valid signup", "john_doe", "Password123", "john@example.com", true, ReasonCreated},
		{"username with dots", "john.doe", "Password123", "john@example.com", true, ReasonCreated},
		{"empty username", "", "Password123", "john@example.com", false, ReasonInvalidUsername},
		{"username with spaces", "john doe", "Password123", "john@example.com", false, ReasonInvalidUsername},
		{"invalid email", "john_doe", "Password123", "not-an-email", false, ReasonInvalidEmail},
		{"empty email", "john_doe", "Password123", "", false, ReasonInvalidEmail},
		{"short password", "john_doe", "short", "john@example.com", false, ReasonPasswordTooShort},
		{"empty password", "john_doe", "", "john@example.com", false, ReasonPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t)

			ok, reason, err := svc.Signup(context.Background(), tt.username, tt.password, tt.email)
			if err != nil {
				t.Fatalf("Signup() error = %v", err)
			}
			if ok != tt.wantOK {
				t.Errorf("Signup() ok = %v, want %v", ok, tt.wantOK)
			}
			if reason != tt.wantReason {
				t.Errorf("Signup() reason = %q, want %q", reason, tt.wantReason)
			}
		})
	}
}

func TestService_Signup_DuplicateUsername(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ok, _, err := svc.Signup(ctx, "john_doe", "Password123", "john@example.com")
	if err != nil || !ok {
		t.Fatalf("first Signup() = (%v, %v), want success", ok, err)
	}

	ok, reason, err := svc.Signup(ctx, "john_doe", "OtherPass456", "other@example.com")
	if err != nil {
		t.Fatalf("second Signup() error = %v", err)
	}
	if ok {
		t.Error("second Signup() ok = true, want false")
	}
	if reason != ReasonUsernameTaken {
		t.Errorf("second Signup() reason = %q, want %q", reason, ReasonUsernameTaken)
	}
}

func TestService_Signup_DefaultAuthority(t *testing.T) {
	svc, repo := newTestService(t)

	if _, _, err := svc.Signup(context.Background(), "john_doe", "Password123", "john@example.com"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	user, err := repo.GetByUsername(context.Background(), "john_doe")
	if err != nil {
		t.Fatalf("GetByUsername() error = %v", err)
	}
	if user.Authority != DefaultAuthority {
		t.Errorf("Authority = %q, want %q", user.Authority, DefaultAuthority)
	}
	if user.PasswordHash == "Password123" {
		t.Error("password stored in plaintext")
	}
}

func TestService_Signup_CreateRace(t *testing.T) {
	svc, repo := newTestService(t)

	// Lookup misses but the insert collides, as happens when two signups
	// for the same username interleave.
	repo.createErr = ErrUsernameExists

	ok, reason, err := svc.Signup(context.Background(), "john_doe", "Password123", "john@example.com")
	if err != nil {
		t.Fatalf("Signup() error = %v", err)
	}
	if ok || reason != ReasonUsernameTaken {
		t.Errorf("Signup() = (%v, %q), want (false, %q)", ok, reason, ReasonUsernameTaken)
	}
}

func TestService_Signup_StoreFault(t *testing.T) {
	svc, repo := newTestService(t)
	repo.lookupErr = errors.New("disk io failure")

	_, _, err := svc.Signup(context.Background(), "john_doe", "Password123", "john@example.com")
	if err == nil {
		t.Fatal("Signup() error = nil, want store fault")
	}
}

func TestService_Login(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "john_doe", "Password123", "john@example.com"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	result, err := svc.Login(ctx, "john_doe", "Password123")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Username != "john_doe" {
		t.Errorf("Username = %q, want %q", result.Username, "john_doe")
	}
	if result.Token == "" {
		t.Fatal("Login() returned empty token")
	}

	// The issued token round-trips through validation with the
	// resolved authorities embedded.
	identity, err := svc.tokens.Validate(result.Token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if identity.Username != "john_doe" {
		t.Errorf("token subject = %q, want %q", identity.Username, "john_doe")
	}
	if !HasAuthority(identity.Authorities, Authority(RolePrefix+DefaultAuthority)) {
		t.Errorf("token authorities = %v, missing default", identity.Authorities)
	}
}

func TestService_Login_WrongPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if _, _, err := svc.Signup(ctx, "john_doe", "Password123", "john@example.com"); err != nil {
		t.Fatalf("Signup() error = %v", err)
	}

	_, err := svc.Login(ctx, "john_doe", "WrongPassword")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
}

func TestService_Login_UnknownUser(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "Password123")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want ErrInvalidCredentials", err)
	}
	if errors.Is(err, ErrUserNotFound) {
		t.Error("Login() leaks user existence through the error")
	}
}

func TestService_LoadIdentity(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	repo.users["admin"] = &User{
		ID:        "usr-admin",
		Username:  "admin",
		Authority: "USER,ADMIN",
	}

	identity, err := svc.LoadIdentity(ctx, "admin")
	if err != nil {
		t.Fatalf("LoadIdentity() error = %v", err)
	}
	want := []Authority{"ROLE_USER", "ROLE_ADMIN"}
	if len(identity.Authorities) != len(want) {
		t.Fatalf("Authorities = %v, want %v", identity.Authorities, want)
	}
	for i, a := range want {
		if identity.Authorities[i] != a {
			t.Errorf("Authorities[%d] = %q, want %q", i, identity.Authorities[i], a)
		}
	}
}

func TestService_LoadIdentity_NotFound(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.LoadIdentity(context.Background(), "nobody")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("LoadIdentity() error = %v, want ErrUserNotFound", err)
	}
}
