package services

import (
	"context"
	"fmt"
	"time"

	"github.com/workhive/jobboard/internal/common"
	"github.com/workhive/jobboard/internal/server/models"
	"github.com/workhive/jobboard/internal/server/repositories/jobs"
)

// CreateJobParams carries the job creation input. Deadline is the raw string
// from the request; OwnerID comes from the verified identity, never from the
// request body.
type CreateJobParams struct {
	Title       string
	Description string
	Deadline    string
	Company     string
	OwnerID     string
}

// JobService provides listing operations on top of the jobs repository.
type JobService struct {
	repo jobs.Repository
}

// NewJobService constructs a JobService.
func NewJobService(repo jobs.Repository) *JobService {
	return &JobService{repo: repo}
}

// Create validates the input, stamps the owner, and stores a new job.
func (s *JobService) Create(ctx context.Context, params CreateJobParams) (*models.Job, error) {
	if params.Title == "" || params.Description == "" || params.Deadline == "" || params.Company == "" {
		return nil, fmt.Errorf("%w: title, desc, lastDate and company are required", common.ErrorValidation)
	}

	deadline, err := parseDeadline(params.Deadline)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date format", common.ErrorValidation)
	}

	job := &models.Job{
		Title:       params.Title,
		Description: params.Description,
		Deadline:    deadline,
		Company:     params.Company,
		UserID:      params.OwnerID,
	}
	job, err = s.repo.Create(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("error creating job: %w", err)
	}

	return job, nil
}

// List returns all jobs, newest first. The feed is intentionally global:
// every authenticated user sees every listing.
func (s *JobService) List(ctx context.Context) ([]*models.Job, error) {
	result, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	return result, nil
}

// parseDeadline accepts RFC 3339 timestamps and bare dates.
func parseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
