package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// Job is a saved job posting.
type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
	ApplyLink   string `json:"apply_link,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// SaveJob inserts a job posting and returns its ID.
func (db *DB) SaveJob(ctx context.Context, title, company, description, applyLink string) (int64, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.conn.ExecContext(ctx,
		`INSERT INTO jobs (title, company, description, apply_link, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		title, company, description, applyLink, now,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to save job: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get job id: %w", err)
	}
	return id, nil
}

// ListJobs returns all saved jobs, newest first.
func (db *DB) ListJobs(ctx context.Context) ([]Job, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, title, company, description, apply_link, created_at
		 FROM jobs ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	jobs := make([]Job, 0)
	for rows.Next() {
		var j Job
		var description, applyLink sql.NullString
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &description, &applyLink, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		j.Description = description.String
		j.ApplyLink = applyLink.String
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate jobs: %w", err)
	}
	return jobs, nil
}

// GetJob returns a job by ID, or nil if it does not exist.
func (db *DB) GetJob(ctx context.Context, id int64) (*Job, error) {
	var j Job
	var description, applyLink sql.NullString
	err := db.conn.QueryRowContext(ctx,
		`SELECT id, title, company, description, apply_link, created_at
		 FROM jobs WHERE id = ?`, id,
	).Scan(&j.ID, &j.Title, &j.Company, &description, &applyLink, &j.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	j.Description = description.String
	j.ApplyLink = applyLink.String
	return &j, nil
}

// DeleteJob removes a job by ID and reports whether a row was deleted.
func (db *DB) DeleteJob(ctx context.Context, id int64) (bool, error) {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM jobs WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete job: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}
	return affected > 0, nil
}
