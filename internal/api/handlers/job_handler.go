package handlers

import (
	"context"
	"net/http"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
)

// JobService defines the posted job operations the handler needs
type JobService interface {
	List(ctx context.Context, filter repositories.JobFilter) ([]*entities.Job, error)
	GetByID(ctx context.Context, id int) (*entities.Job, error)
}

// JobHandler handles posted job requests
type JobHandler struct {
	service JobService
}

// NewJobHandler creates a new job handler
func NewJobHandler(service JobService) *JobHandler {
	return &JobHandler{
		service: service,
	}
}

// ListJobs handles GET /api/jobs
func (h *JobHandler) ListJobs(w http.ResponseWriter, r *http.Request) {
	filter := repositories.JobFilter{
		Status:   entities.JobStatus(r.URL.Query().Get("status")),
		Category: r.URL.Query().Get("category"),
	}

	jobs, err := h.service.List(r.Context(), filter)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"jobs":  jobs,
		"count": len(jobs),
	})
}

// GetJob handles GET /api/jobs/{id}
func (h *JobHandler) GetJob(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	job, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, job)
}
