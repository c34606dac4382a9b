package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/winnipegconnect/backend/internal/domain/appstate"
	"github.com/winnipegconnect/backend/internal/domain/providers"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

const sessionKeyPrefix = "session:"

// SessionAdapter stores session view state as JSON in a CacheProvider
type SessionAdapter struct {
	cache providers.CacheProvider
	ttl   time.Duration
}

var _ repositories.SessionRepository = (*SessionAdapter)(nil)

// NewSessionAdapter creates a session store whose entries expire after ttl
// without activity
func NewSessionAdapter(cache providers.CacheProvider, ttl time.Duration) *SessionAdapter {
	return &SessionAdapter{cache: cache, ttl: ttl}
}

// Get retrieves the state of a session
func (a *SessionAdapter) Get(ctx context.Context, id string) (appstate.State, error) {
	data, err := a.cache.Get(ctx, sessionKeyPrefix+id)
	if errors.Is(err, providers.ErrCacheMiss) {
		return appstate.State{}, apperrors.NewNotFoundError(fmt.Sprintf("session %s not found", id))
	}
	if err != nil {
		return appstate.State{}, apperrors.NewExternalError("failed to load session", err)
	}

	var state appstate.State
	if err := json.Unmarshal(data, &state); err != nil {
		return appstate.State{}, apperrors.NewInternalError("failed to decode session", err)
	}
	return state, nil
}

// Save stores the state of a session and refreshes its expiry
func (a *SessionAdapter) Save(ctx context.Context, id string, state appstate.State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return apperrors.NewInternalError("failed to encode session", err)
	}
	if err := a.cache.Set(ctx, sessionKeyPrefix+id, data, int(a.ttl.Seconds())); err != nil {
		return apperrors.NewExternalError("failed to save session", err)
	}
	return nil
}

// Delete removes a session
func (a *SessionAdapter) Delete(ctx context.Context, id string) error {
	exists, err := a.cache.Exists(ctx, sessionKeyPrefix+id)
	if err != nil {
		return apperrors.NewExternalError("failed to look up session", err)
	}
	if !exists {
		return apperrors.NewNotFoundError(fmt.Sprintf("session %s not found", id))
	}
	if err := a.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return apperrors.NewExternalError("failed to delete session", err)
	}
	return nil
}
