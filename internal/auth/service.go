package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// SignupReason describes the outcome of a signup attempt in machine-readable
// form so transports can relay it without parsing error strings.
type SignupReason string

const (
	ReasonCreated          SignupReason = "created"
	ReasonUsernameTaken    SignupReason = "username_taken"
	ReasonInvalidUsername  SignupReason = "invalid_username"
	ReasonInvalidEmail     SignupReason = "invalid_email"
	ReasonPasswordTooShort SignupReason = "password_too_short"
)

// LoginResult carries the outcome of a successful credential check.
type LoginResult struct {
	Username string
	Token    string
}

// Service implements signup and login over a user repository and a token
// provider. All policy lives here: input validation, duplicate handling,
// credential verification, and the shape of failure.
type Service struct {
	users  UserRepository
	tokens *TokenProvider
	logger *slog.Logger
}

// NewService creates the auth service.
func NewService(users UserRepository, tokens *TokenProvider, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{users: users, tokens: tokens, logger: logger}
}

// Signup registers a new user account. It returns (true, ReasonCreated, nil)
// on success and (false, reason, nil) when the request is rejected for a
// policy reason; the error return is reserved for store or hashing faults.
// New accounts receive DefaultAuthority.
func (s *Service) Signup(ctx context.Context, username, password, email string) (bool, SignupReason, error) {
	if !IsValidUsername(username) {
		return false, ReasonInvalidUsername, nil
	}
	if !IsValidEmail(email) {
		return false, ReasonInvalidEmail, nil
	}
	if len(password) < MinPasswordLength {
		return false, ReasonPasswordTooShort, nil
	}

	_, err := s.users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return false, ReasonUsernameTaken, nil
	case !errors.Is(err, ErrUserNotFound):
		return false, "", fmt.Errorf("checking username: %w", err)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return false, "", fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Authority:    DefaultAuthority,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// Lost a race to a concurrent signup for the same username.
		if errors.Is(err, ErrUsernameExists) {
			return false, ReasonUsernameTaken, nil
		}
		return false, "", fmt.Errorf("creating user: %w", err)
	}

	s.logger.Info("user registered", "username", username, "user_id", user.ID)

	return true, ReasonCreated, nil
}

// Login verifies the supplied credentials and, on success, issues a signed
// access token. Unknown usernames and wrong passwords both surface as
// ErrInvalidCredentials so callers cannot distinguish which part failed.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	identity := &Identity{
		Username:    user.Username,
		Authorities: ResolveAuthorities(user.Authority),
	}

	token, err := s.tokens.Generate(identity)
	if err != nil {
		return nil, fmt.Errorf("generating token: %w", err)
	}

	s.logger.Info("user authenticated", "username", username)

	return &LoginResult{Username: user.Username, Token: token}, nil
}

// LoadIdentity resolves the stored identity for a username, including its
// granted authorities. Absence surfaces as ErrUserNotFound.
func (s *Service) LoadIdentity(ctx context.Context, username string) (*Identity, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	return &Identity{
		Username:    user.Username,
		Authorities: ResolveAuthorities(user.Authority),
	}, nil
}
