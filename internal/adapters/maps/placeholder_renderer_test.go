package maps

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

func TestPlaceholderRenderer_Bounds(t *testing.T) {
	markers := []entities.MapMarker{
		{ProviderID: 1, Label: "A", Coordinates: entities.Coordinates{Latitude: 49.90, Longitude: -97.20}},
		{ProviderID: 2, Label: "B", Coordinates: entities.Coordinates{Latitude: 49.80, Longitude: -97.10}},
	}

	view, err := NewPlaceholderRenderer().Render(context.Background(), markers)

	require.NoError(t, err)
	assert.True(t, view.Placeholder)
	assert.Equal(t, markers, view.Markers)
	require.NotNil(t, view.Bounds)
	assert.Equal(t, entities.MapBounds{North: 49.90, South: 49.80, East: -97.10, West: -97.20}, *view.Bounds)
	require.NotNil(t, view.Center)
	assert.InDelta(t, 49.85, view.Center.Latitude, 1e-9)
	assert.InDelta(t, -97.15, view.Center.Longitude, 1e-9)
}

func TestPlaceholderRenderer_NoMarkers(t *testing.T) {
	view, err := NewPlaceholderRenderer().Render(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, view.Markers)
	assert.NotNil(t, view.Markers)
	assert.Nil(t, view.Bounds)
	assert.Equal(t, WinnipegCenter, *view.Center)
}
