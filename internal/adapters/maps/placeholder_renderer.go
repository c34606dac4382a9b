package maps

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/providers"
)

// WinnipegCenter is shown when there is nothing to plot
var WinnipegCenter = entities.Coordinates{Latitude: 49.8951, Longitude: -97.1384}

const placeholderMessage = "Interactive map coming soon"

// PlaceholderRenderer implements MapRenderer without a map backend. It
// returns the markers with their bounding box and center.
type PlaceholderRenderer struct{}

var _ providers.MapRenderer = PlaceholderRenderer{}

// NewPlaceholderRenderer creates a placeholder renderer
func NewPlaceholderRenderer() providers.MapRenderer {
	return PlaceholderRenderer{}
}

// Render builds a placeholder view for markers
func (PlaceholderRenderer) Render(_ context.Context, markers []entities.MapMarker) (*entities.MapView, error) {
	view := &entities.MapView{
		Markers:     markers,
		Placeholder: true,
		Message:     placeholderMessage,
	}
	if view.Markers == nil {
		view.Markers = []entities.MapMarker{}
	}

	if len(markers) == 0 {
		center := WinnipegCenter
		view.Center = &center
		return view, nil
	}

	first := markers[0].Coordinates
	bounds := entities.MapBounds{
		North: first.Latitude,
		South: first.Latitude,
		East:  first.Longitude,
		West:  first.Longitude,
	}
	for _, m := range markers[1:] {
		c := m.Coordinates
		bounds.North = max(bounds.North, c.Latitude)
		bounds.South = min(bounds.South, c.Latitude)
		bounds.East = max(bounds.East, c.Longitude)
		bounds.West = min(bounds.West, c.Longitude)
	}

	view.Bounds = &bounds
	view.Center = &entities.Coordinates{
		Latitude:  (bounds.North + bounds.South) / 2,
		Longitude: (bounds.East + bounds.West) / 2,
	}
	return view, nil
}
