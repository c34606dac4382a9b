package providers

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// MapRenderer turns labelled coordinates into a map view
type MapRenderer interface {
	Render(ctx context.Context, markers []entities.MapMarker) (*entities.MapView, error)
}
