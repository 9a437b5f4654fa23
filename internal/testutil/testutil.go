package testutil

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"pharmadesk/internal/database"
	"pharmadesk/internal/migrations"
)

// OpenDB opens a named in-memory SQLite database with the schema applied.
// The name keeps parallel test packages from sharing state; the DB is closed
// via t.Cleanup.
func OpenDB(t *testing.T, name string) *sqlx.DB {
	t.Helper()
	db, err := database.Connect("file:" + name + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := migrations.Run(db); err != nil {
		t.Fatalf("apply schema: %v", err)
	}
	return db
}
