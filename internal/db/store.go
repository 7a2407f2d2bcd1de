package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SchemaVersion is stamped into SQLite's user_version pragma. Bumping it
// drops and recreates both tables on the next open; existing rows are not
// migrated.
const SchemaVersion = 4

const (
	createUsersTable = `CREATE TABLE IF NOT EXISTS Users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		email TEXT,
		password TEXT
	)`

	createOrdersTable = `CREATE TABLE IF NOT EXISTS Orders (
		order_id INTEGER PRIMARY KEY AUTOINCREMENT,
		total_amount REAL,
		total_items INTEGER,
		order_date TEXT
	)`
)

// Store knows where the database file lives. Each repository operation opens
// a fresh handle via Open and closes it before returning; nothing is pooled
// across calls, and SQLite's own locking is the only writer coordination.
type Store struct {
	Path string
}

// Open opens the database file, creating it if absent, and ensures both
// tables exist at the current schema version. The caller owns the returned
// handle and must Close it.
func (s *Store) Open(ctx context.Context) (*sql.DB, error) {
	h, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, err
	}
	if err := ensureSchema(ctx, h); err != nil {
		_ = h.Close()
		return nil, err
	}
	return h, nil
}

func ensureSchema(ctx context.Context, h *sql.DB) error {
	var version int
	if err := h.QueryRowContext(ctx, `PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("read user_version: %w", err)
	}

	if version != 0 && version != SchemaVersion {
		if _, err := h.ExecContext(ctx, `DROP TABLE IF EXISTS Users`); err != nil {
			return fmt.Errorf("drop Users: %w", err)
		}
		if _, err := h.ExecContext(ctx, `DROP TABLE IF EXISTS Orders`); err != nil {
			return fmt.Errorf("drop Orders: %w", err)
		}
	}

	if _, err := h.ExecContext(ctx, createUsersTable); err != nil {
		return fmt.Errorf("create Users: %w", err)
	}
	if _, err := h.ExecContext(ctx, createOrdersTable); err != nil {
		return fmt.Errorf("create Orders: %w", err)
	}

	if version != SchemaVersion {
		if _, err := h.ExecContext(ctx, fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion)); err != nil {
			return fmt.Errorf("set user_version: %w", err)
		}
	}
	return nil
}
