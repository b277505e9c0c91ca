package jobs

import (
	"context"

	"github.com/workhive/jobboard/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, job *models.Job) (*models.Job, error)
	List(ctx context.Context) ([]*models.Job, error)
}
