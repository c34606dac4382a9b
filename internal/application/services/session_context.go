package services

import (
	"context"

	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
)

// WithSessionID returns a context carrying the client session id
func WithSessionID(ctx context.Context, id string) context.Context {
	return observability.ContextWithSessionID(ctx, id)
}

// SessionIDFromContext returns the session id set by WithSessionID, if any
func SessionIDFromContext(ctx context.Context) string {
	return observability.SessionIDFromContext(ctx)
}
