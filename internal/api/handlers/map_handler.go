package handlers

import (
	"context"
	"net/http"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// MapService defines the map marker operation the handler needs
type MapService interface {
	Markers(ctx context.Context, query entities.ProviderQuery) (*entities.MapView, error)
}

// MapHandler handles provider map requests
type MapHandler struct {
	service MapService
}

// NewMapHandler creates a new map handler
func NewMapHandler(service MapService) *MapHandler {
	return &MapHandler{
		service: service,
	}
}

// GetMarkers handles GET /api/map/markers. It accepts the provider list query parameters.
func (h *MapHandler) GetMarkers(w http.ResponseWriter, r *http.Request) {
	query, err := parseProviderQuery(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	view, err := h.service.Markers(r.Context(), query)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}
