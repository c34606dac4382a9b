package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/winnipegconnect/backend/internal/adapters/maps"
	"github.com/winnipegconnect/backend/internal/application/services"
	"github.com/winnipegconnect/backend/internal/domain/entities"
)

func TestMapService_MarkersFollowQueryOrder(t *testing.T) {
	repo := new(mockProviderRepository)
	renderer := new(mockMapRenderer)
	service := services.NewMapService(repo, renderer)

	providers := catalog(t)
	repo.On("List", mock.Anything).Return(providers, nil)
	renderer.On("Render", mock.Anything, mock.Anything).Return(&entities.MapView{Placeholder: true}, nil)

	_, err := service.Markers(context.Background(), entities.ProviderQuery{MinRating: 4.75, SortKey: entities.SortByRating})
	require.NoError(t, err)

	markers := renderer.Calls[0].Arguments.Get(1).([]entities.MapMarker)
	labels := make([]string, len(markers))
	for i, m := range markers {
		labels[i] = m.Label
	}
	assert.Equal(t, []string{"Green Thumb Landscaping", "Pet Care Plus", "Winnipeg Home Repairs"}, labels)
	assert.Equal(t, providers[2].Coordinates, markers[0].Coordinates)
}

func TestMapService_WithPlaceholderRenderer(t *testing.T) {
	repo := new(mockProviderRepository)
	service := services.NewMapService(repo, maps.NewPlaceholderRenderer())
	repo.On("List", mock.Anything).Return(catalog(t), nil)

	view, err := service.Markers(context.Background(), entities.ProviderQuery{SearchTerm: "zzz"})

	require.NoError(t, err)
	assert.True(t, view.Placeholder)
	assert.Empty(t, view.Markers)
}
