package providers

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// AnalyticsSink forwards search events to an external pipeline
type AnalyticsSink interface {
	// Publish sends one event
	Publish(ctx context.Context, event *entities.SearchEvent) error

	// Close flushes pending events and releases the connection
	Close() error
}
