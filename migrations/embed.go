// Package migrations embeds SQL migration files into the binary.
//
// This lets blogd apply its schema without shipping SQL files alongside
// the executable - they're compiled in.
package migrations

import (
	"embed"

	"github.com/bloghaus/blog-backend/internal/infrastructure/database"
)

//go:embed *.sql
var migrationsFS embed.FS

func init() {
	// Register embedded migrations with the database package.
	// The embed directive above captures all .sql files in this directory.
	database.MigrationsFS = migrationsFS
	database.MigrationsDir = "." // Files are at root of embedded FS
}
