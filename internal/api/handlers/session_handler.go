package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/appstate"
)

// SessionService defines the view-state operations the handler needs
type SessionService interface {
	Create(ctx context.Context) (string, appstate.State, error)
	Get(ctx context.Context, id string) (appstate.State, error)
	Apply(ctx context.Context, id string, action appstate.Action) (appstate.State, error)
	View(ctx context.Context, id string) (*services.SessionView, error)
	Delete(ctx context.Context, id string) error
}

// SessionResponse is a session id with its current state
type SessionResponse struct {
	ID    string         `json:"id"`
	State appstate.State `json:"state"`
}

// SessionHandler handles per-client view state requests
type SessionHandler struct {
	service SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(service SessionService) *SessionHandler {
	return &SessionHandler{
		service: service,
	}
}

// CreateSession handles POST /api/sessions
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, state, err := h.service.Create(r.Context())
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/sessions/"+id)
	respondWithJSON(w, http.StatusCreated, SessionResponse{ID: id, State: state})
}

// GetSession handles GET /api/sessions/{id}
func (h *SessionHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	state, err := h.service.Get(r.Context(), id)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{ID: id, State: state})
}

// ApplyAction handles POST /api/sessions/{id}/actions
func (h *SessionHandler) ApplyAction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var action appstate.Action
	if err := json.NewDecoder(r.Body).Decode(&action); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	state, err := h.service.Apply(r.Context(), id, action)
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, SessionResponse{ID: id, State: state})
}

// GetView handles GET /api/sessions/{id}/view
func (h *SessionHandler) GetView(w http.ResponseWriter, r *http.Request) {
	view, err := h.service.View(r.Context(), r.PathValue("id"))
	if err != nil {
		respondWithAppError(w, r, err)
		return
	}

	respondWithJSON(w, http.StatusOK, view)
}

// DeleteSession handles DELETE /api/sessions/{id}
func (h *SessionHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), r.PathValue("id")); err != nil {
		respondWithAppError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
