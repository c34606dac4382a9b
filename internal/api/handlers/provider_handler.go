package handlers

import (
	"context"
	"net/http"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

// ProviderService defines the provider catalog operations the handler needs
type ProviderService interface {
	Query(ctx context.Context, query entities.ProviderQuery) (*entities.ProviderQueryResult, error)
	GetByID(ctx context.Context, id int) (*entities.Provider, error)
	Suggest(ctx context.Context, prefix string, limit int) ([]*entities.Provider, error)
	Categories(ctx context.Context) ([]string, error)
}

// ProviderSuggestion is a single name completion
type ProviderSuggestion struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	BusinessType string  `json:"businessType"`
	Rating       float64 `json:"rating"`
}

// ProviderHandler handles provider catalog requests
type ProviderHandler struct {
	service ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(service ProviderService) *ProviderHandler {
	return &ProviderHandler{
		service: service,
	}
}

// ListProviders handles GET /api/providers
func (h *ProviderHandler) ListProviders(w http.ResponseWriter, r *http.Request) {
	query, err := parseProviderQuery(r)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	result, err := h.service.Query(r.Context(), query)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, result)
}

// GetProvider handles GET /api/providers/{id}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	provider, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, provider)
}

// SuggestProviders handles GET /api/providers/suggest
func (h *ProviderHandler) SuggestProviders(w http.ResponseWriter, r *http.Request) {
	prefix := r.URL.Query().Get("q")
	if prefix == "" {
		respondWithAppError(w, r, apperrors.NewValidationError("q is required"))
		return
	}

	limit, err := parseLimit(r, 0, 50)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	providers, err := h.service.Suggest(r.Context(), prefix, limit)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	suggestions := make([]ProviderSuggestion, 0, len(providers))
	for _, p := range providers {
		suggestions = append(suggestions, ProviderSuggestion{
			ID:           p.ID,
			Name:         p.Name,
			BusinessType: p.BusinessType,
			Rating:       p.Rating,
		})
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"suggestions": suggestions,
		"count":       len(suggestions),
	})
}

// ListCategories handles GET /api/categories
func (h *ProviderHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.Categories(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"categories": categories,
	})
}
