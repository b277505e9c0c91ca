// Package jobs provides the PostgreSQL-backed repository for job listings.
package jobs

import (
	"context"
	"fmt"

	"github.com/workhive/jobboard/internal/dbx"
	"github.com/workhive/jobboard/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX
// (satisfied by *sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a new job with its owner already stamped by the service.
func (r *PostgresRepository) Create(ctx context.Context, job *models.Job) (*models.Job, error) {
	query := `
		INSERT INTO jobs (title, description, deadline, company, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		job.Title, job.Description, job.Deadline, job.Company, job.UserID).
		Scan(&job.ID, &job.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return job, nil
}

// List returns every job, newest first. The feed is global: listings are
// visible to any logged-in user, not only their owner.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Job, error) {
	query := `
		SELECT id, title, description, deadline, company, user_id, created_at
		FROM jobs
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Job{}
	for rows.Next() {
		job := &models.Job{}
		if err := rows.Scan(&job.ID, &job.Title, &job.Description,
			&job.Deadline, &job.Company, &job.UserID, &job.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
