// Package database provides SQLite database connectivity for the blog backend.
//
// This package manages:
//   - Database connection with WAL mode for concurrent access
//   - Embedded schema migrations (.up.sql / .down.sql pairs)
//   - Connection pooling and lifecycle management
//   - STRICT mode table definitions for type safety
//
// Security Considerations:
//   - All queries use parameterised statements (no SQL injection)
//   - Database file permissions are set to 0600 (owner read/write only)
//
// Performance Characteristics:
//   - WAL mode allows concurrent reads during writes
//   - Busy timeout prevents lock contention errors
//
// Usage:
//
//	db, err := database.Open(cfg.Database)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer db.Close()
//
//	if err := db.Migrate(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// The UNIQUE constraint on users.username is what serialises concurrent
// signups racing on the same name: the store, not the service layer, is the
// arbiter of uniqueness.
package database
