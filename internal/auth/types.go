package auth

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// usernamePattern defines the valid format for usernames:
// alphanumeric, dots, hyphens, underscores, 1-64 characters.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]{1,64}$`)

// emailPattern checks the basic local@domain shape. Full RFC 5322
// validation is deliberately out of scope; delivery is the real test.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// maxUsernameLength is the maximum allowed username length.
const maxUsernameLength = 64

// MinPasswordLength is the signup password policy minimum.
const MinPasswordLength = 8

// IsValidUsername checks if a username meets format requirements.
// Usernames must be 1-64 characters, alphanumeric with dots, hyphens, underscores.
func IsValidUsername(username string) bool {
	return len(username) <= maxUsernameLength && usernamePattern.MatchString(username)
}

// IsValidEmail checks if an email address has a plausible local@domain shape.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// User represents a registered blog account.
//
// Username is the unique, immutable login identifier. PasswordHash holds
// an Argon2id PHC string and never a plaintext password. Authority is a
// comma-separated list of role tokens (e.g. "USER,ADMIN"); it may be empty.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"` // never serialised
	Authority    string    `json:"authority"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity is an authenticated principal: the token subject plus the
// authorities resolved from the stored authority string at issue time.
type Identity struct {
	Username    string      `json:"username"`
	Authorities []Authority `json:"authorities"`
}

// Sentinel errors for auth operations.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameExists     = errors.New("username already exists")
	ErrEmptyPassword      = errors.New("password must not be empty")

	// ErrTokenInvalid is the generic token failure. The specific token
	// errors below all wrap it, so callers that don't care which check
	// failed can match the one sentinel.
	ErrTokenInvalid = errors.New("invalid token")

	ErrTokenExpired   = fmt.Errorf("%w: token has expired", ErrTokenInvalid)
	ErrTokenSignature = fmt.Errorf("%w: signature verification failed", ErrTokenInvalid)
	ErrTokenMalformed = fmt.Errorf("%w: malformed token", ErrTokenInvalid)
)
