package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
)

// SeedAdmin creates an initial administrator account when the user table is
// empty. The generated password is logged once at warn level; it is not
// recoverable afterwards, so operators should log in and change it promptly.
func SeedAdmin(ctx context.Context, users UserRepository, logger *slog.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return fmt.Errorf("counting users: %w", err)
	}
	if count > 0 {
		return nil
	}

	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return fmt.Errorf("generating admin password: %w", err)
	}
	password := hex.EncodeToString(raw)

	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("hashing admin password: %w", err)
	}

	admin := &User{
		Username:     "admin",
		Email:        "admin@localhost",
		PasswordHash: hash,
		Authority:    "USER,ADMIN",
	}
	if err := users.Create(ctx, admin); err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	logger.Warn("seeded initial admin account; change this password immediately",
		"username", admin.Username, "password", password)

	return nil
}
