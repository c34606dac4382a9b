package repositories

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/appstate"
)

// SessionRepository stores the view state of client sessions
type SessionRepository interface {
	// Get retrieves the state of a session
	Get(ctx context.Context, id string) (appstate.State, error)

	// Save stores the state of a session, replacing any previous value
	Save(ctx context.Context, id string, state appstate.State) error

	// Delete removes a session
	Delete(ctx context.Context, id string) error
}
