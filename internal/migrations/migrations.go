package migrations

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Run creates the database schema. Each statement is idempotent, so the
// schema is created fresh on first start and left alone afterwards.
//
// sales.drug_id is a plain column, not a FOREIGN KEY: deleting a drug keeps
// its sale history, and reports resolve the missing name as "Unknown".
func Run(db *sqlx.DB) error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT '',
			created_at TEXT NOT NULL DEFAULT (CURRENT_TIMESTAMP)
		);`,
		`CREATE TABLE IF NOT EXISTS drugs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			price TEXT NOT NULL,
			quantity INTEGER NOT NULL,
			description TEXT NOT NULL DEFAULT ''
		);`,
		`CREATE TABLE IF NOT EXISTS sales (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			drug_id INTEGER NOT NULL,
			quantity INTEGER NOT NULL,
			total_price TEXT NOT NULL,
			sale_date TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_sales_date ON sales(sale_date);`,
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
