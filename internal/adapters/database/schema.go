package database

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// The statements are shared by both dialects; {{ts}} is replaced by the
// dialect's timestamp type.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		name          TEXT NOT NULL DEFAULT '',
		password_hash TEXT NOT NULL,
		created_at    {{ts}} NOT NULL,
		updated_at    {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS homes (
		id          TEXT PRIMARY KEY,
		name        TEXT NOT NULL,
		invite_code TEXT NOT NULL UNIQUE,
		created_at  {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS home_members (
		home_id   TEXT NOT NULL REFERENCES homes(id) ON DELETE CASCADE,
		user_id   TEXT NOT NULL UNIQUE REFERENCES users(id) ON DELETE CASCADE,
		joined_at {{ts}} NOT NULL,
		PRIMARY KEY (home_id, user_id)
	)`,
	`CREATE TABLE IF NOT EXISTS tasks (
		id          TEXT PRIMARY KEY,
		home_id     TEXT NOT NULL REFERENCES homes(id) ON DELETE CASCADE,
		title       TEXT NOT NULL,
		points      INTEGER NOT NULL CHECK (points > 0),
		due_date    {{ts}} NOT NULL,
		assignee_id TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
		created_at  {{ts}} NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS receipts (
		id              TEXT PRIMARY KEY,
		task_id         TEXT NOT NULL UNIQUE REFERENCES tasks(id) ON DELETE CASCADE,
		home_id         TEXT NOT NULL REFERENCES homes(id) ON DELETE CASCADE,
		completer_id    TEXT NULL REFERENCES users(id) ON DELETE SET NULL,
		points          INTEGER NOT NULL CHECK (points > 0),
		completion_date {{ts}} NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_home_due ON tasks (home_id, due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_receipts_home_completion ON receipts (home_id, completion_date)`,
}

func timestampType(driverName string) string {
	if driverName == DriverSQLite {
		return "TIMESTAMP"
	}
	return "TIMESTAMPTZ"
}

// Migrate creates the tables if they are missing. It is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	ts := timestampType(db.DriverName())

	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, strings.ReplaceAll(stmt, "{{ts}}", ts)); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
