package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	sqliterepo "github.com/brandkitai/brandkit/internal/repository/sqlite"
)

// NewTestDB creates an in-memory SQLite database with the full schema
// applied. MaxOpenConns is pinned to 1 so every query sees the same
// in-memory database.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := sqliterepo.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { db.Close() })

	return db
}
