package repositories

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// SearchAnalyticsRepository records provider searches
type SearchAnalyticsRepository interface {
	LogEvent(ctx context.Context, event *entities.SearchEvent) error
	GetZeroResultQueries(ctx context.Context, limit int) ([]*entities.SearchEvent, error)
}
