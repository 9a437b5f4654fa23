package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Connect opens (or creates) the SQLite database at path. The store is a
// single local file; one connection is enough for command-by-command use and
// keeps in-memory test databases on a single shared handle.
func Connect(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("set busy_timeout: %w", err)
	}
	// journal_mode is unsupported for in-memory databases; ignore errors.
	_, _ = db.Exec(`PRAGMA journal_mode = WAL`)

	return db, nil
}
