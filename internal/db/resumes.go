package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/types"
)

// StoredResume is a parsed résumé persisted with its source filename.
type StoredResume struct {
	ID        string              `json:"id"`
	Filename  string              `json:"filename"`
	Record    *types.ResumeRecord `json:"record"`
	CreatedAt string              `json:"created_at"`
}

// SaveResume persists a parsed résumé record and returns its generated ID.
func (db *DB) SaveResume(ctx context.Context, filename string, record *types.ResumeRecord) (string, error) {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return "", fmt.Errorf("failed to marshal resume record: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC().Format(time.RFC3339)
	_, err = db.conn.ExecContext(ctx,
		`INSERT INTO resumes (id, filename, record, created_at) VALUES (?, ?, ?, ?)`,
		id, filename, string(recordJSON), now,
	)
	if err != nil {
		return "", fmt.Errorf("failed to save resume: %w", err)
	}
	return id, nil
}

// GetResume returns a stored résumé by ID, or nil if it does not exist.
func (db *DB) GetResume(ctx context.Context, id string) (*StoredResume, error) {
	var stored StoredResume
	var recordJSON string
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, filename, record, created_at FROM resumes WHERE id = ?`, id,
	).Scan(&stored.ID, &stored.Filename, &recordJSON, &stored.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}

	if err := json.Unmarshal([]byte(recordJSON), &stored.Record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal resume record: %w", err)
	}
	return &stored, nil
}

// ListResumes returns all stored résumés without their records, newest
// first.
func (db *DB) ListResumes(ctx context.Context) ([]StoredResume, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, filename, created_at FROM resumes ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	resumes := make([]StoredResume, 0)
	for rows.Next() {
		var stored StoredResume
		if err := rows.Scan(&stored.ID, &stored.Filename, &stored.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, stored)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate resumes: %w", err)
	}
	return resumes, nil
}

// DeleteResume removes a stored résumé and reports whether a row was
// deleted.
func (db *DB) DeleteResume(ctx context.Context, id string) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM resumes WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}
