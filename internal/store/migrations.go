package store

import (
	"context"
	"database/sql"
)

// schema contains the DDL for all taskflow tables.
// Each statement uses IF NOT EXISTS for idempotency.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS tasks (
		id                TEXT PRIMARY KEY,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		deadline          TEXT NOT NULL,
		estimated_minutes INTEGER NOT NULL,
		priority          INTEGER NOT NULL,
		status            TEXT NOT NULL DEFAULT 'TODO',
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_deadline ON tasks(deadline)`,
	// Pending-task scans filter on status and read in deadline order.
	`CREATE INDEX IF NOT EXISTS idx_tasks_status_deadline ON tasks(status, deadline)`,
}

// migrate executes all schema DDL statements.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
