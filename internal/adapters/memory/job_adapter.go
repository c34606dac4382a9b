package memory

import (
	"context"
	"fmt"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

// JobAdapter serves posted jobs from the fixture catalog
type JobAdapter struct {
	jobs []*entities.Job
}

var _ repositories.JobRepository = (*JobAdapter)(nil)

// NewJobAdapter creates a repository over jobs
func NewJobAdapter(jobs []*entities.Job) *JobAdapter {
	return &JobAdapter{jobs: jobs}
}

// List retrieves jobs matching the filter in posting order
func (a *JobAdapter) List(_ context.Context, filter repositories.JobFilter) ([]*entities.Job, error) {
	out := make([]*entities.Job, 0, len(a.jobs))
	for _, job := range a.jobs {
		if filter.Matches(job) {
			out = append(out, job)
		}
	}
	return out, nil
}

// GetByID retrieves a job by ID
func (a *JobAdapter) GetByID(_ context.Context, id int) (*entities.Job, error) {
	for _, job := range a.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return nil, apperrors.NewNotFoundError(fmt.Sprintf("job %d not found", id))
}

// Create always fails; the fixture catalog is immutable
func (a *JobAdapter) Create(_ context.Context, job *entities.Job) error {
	return apperrors.NewConflictError(fmt.Sprintf("cannot add job %d: fixture catalog is read-only", job.ID))
}
