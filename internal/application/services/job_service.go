package services

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

// JobService exposes posted jobs
type JobService struct {
	repo repositories.JobRepository
}

// NewJobService creates a new job service
func NewJobService(repo repositories.JobRepository) *JobService {
	return &JobService{repo: repo}
}

// List returns the jobs matching filter
func (s *JobService) List(ctx context.Context, filter repositories.JobFilter) ([]*entities.Job, error) {
	switch filter.Status {
	case "", entities.JobStatusOpen, entities.JobStatusInProgress, entities.JobStatusCompleted:
	default:
		return nil, apperrors.NewValidationError("status must be open, in-progress or completed")
	}
	return s.repo.List(ctx, filter)
}

// GetByID retrieves a job
func (s *JobService) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	return s.repo.GetByID(ctx, id)
}
