package repositories

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// JobRepository defines the interface for posted job access
type JobRepository interface {
	// List retrieves jobs matching the filter in posting order
	List(ctx context.Context, filter JobFilter) ([]*entities.Job, error)

	// GetByID retrieves a job by ID
	GetByID(ctx context.Context, id int) (*entities.Job, error)

	// Create adds a job
	Create(ctx context.Context, job *entities.Job) error
}

// JobFilter defines filters for listing jobs. Empty fields match everything.
type JobFilter struct {
	Status   entities.JobStatus
	Category string
}

// Matches reports whether job passes the filter
func (f JobFilter) Matches(job *entities.Job) bool {
	if f.Status != "" && job.Status != f.Status {
		return false
	}
	if f.Category != "" && f.Category != entities.AllCategories && job.Category != f.Category {
		return false
	}
	return true
}
