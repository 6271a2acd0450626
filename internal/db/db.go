// Package db provides SQLite storage for saved jobs and parsed résumés.
package db

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database handle.
type DB struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database at path and ensures the
// schema exists.
func Open(ctx context.Context, path string) (*DB, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(1) // SQLite: single writer

	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.initSchema(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return db, nil
}

// Close closes the database handle.
func (db *DB) Close() error {
	return db.conn.Close()
}

func (db *DB) initSchema(ctx context.Context) error {
	_, err := db.conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS jobs (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		company     TEXT NOT NULL,
		description TEXT,
		apply_link  TEXT,
		created_at  TEXT NOT NULL
	)`)
	if err != nil {
		return err
	}

	_, err = db.conn.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS resumes (
		id         TEXT PRIMARY KEY,
		filename   TEXT NOT NULL,
		record     TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`)
	return err
}
