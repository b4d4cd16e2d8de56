package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and are
// re-run on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS submissions (
		id             TEXT PRIMARY KEY,
		submitted_at   TEXT NOT NULL,
		terms_json     TEXT NOT NULL,
		outcome        TEXT NOT NULL
		               CHECK(outcome IN ('succeeded','failed','discarded')),
		cumulative_gpa TEXT NOT NULL DEFAULT '',
		error_message  TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_submissions_submitted_at ON submissions(submitted_at)`,
}
