package handlers

import (
	"context"
	"net/http"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

const defaultZeroResultLimit = 20

// AnalyticsService defines the search analytics read operations
type AnalyticsService interface {
	ZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error)
}

// AnalyticsHandler handles search analytics requests
type AnalyticsHandler struct {
	service AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		service: service,
	}
}

// GetZeroResultQueries handles GET /api/analytics/zero-result-queries
func (h *AnalyticsHandler) GetZeroResultQueries(w http.ResponseWriter, r *http.Request) {
	limit, err := parseLimit(r, defaultZeroResultLimit, 50)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	events, err := h.service.ZeroResultQueries(r.Context(), limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"queries": events,
		"count":   len(events),
	})
}
