package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CreateJob stores a job posting for a user and returns its ID
func (db *DB) CreateJob(ctx context.Context, job *Job) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (user_id, title, company, salary, industry)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		job.UserID, job.Title, job.Company, job.Salary, job.Industry,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create job: %w", err)
	}
	return id, nil
}

// GetJob retrieves a job posting by ID. Returns (nil, nil) when not found,
// which callers treat as a non-fatal lookup miss.
func (db *DB) GetJob(ctx context.Context, jobID uuid.UUID) (*Job, error) {
	var job Job
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, title, company, salary, industry, created_at
		 FROM jobs WHERE id = $1`,
		jobID,
	).Scan(&job.ID, &job.UserID, &job.Title, &job.Company, &job.Salary, &job.Industry, &job.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return &job, nil
}

// ListJobs retrieves a user's saved job postings
func (db *DB) ListJobs(ctx context.Context, userID uuid.UUID) ([]Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, user_id, title, company, salary, industry, created_at
		 FROM jobs WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []Job
	for rows.Next() {
		var job Job
		if err := rows.Scan(&job.ID, &job.UserID, &job.Title, &job.Company, &job.Salary, &job.Industry, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job: %w", err)
		}
		jobs = append(jobs, job)
	}
	return jobs, nil
}
