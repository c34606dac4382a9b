package services

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/providers"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	queryservices "github.com/winnipegconnect/backend/internal/query/services"
)

// MapService hands the providers of a query to the map renderer
type MapService struct {
	repo     repositories.ProviderRepository
	renderer providers.MapRenderer
}

// NewMapService creates a new map service
func NewMapService(repo repositories.ProviderRepository, renderer providers.MapRenderer) *MapService {
	return &MapService{repo: repo, renderer: renderer}
}

// Markers renders one labelled marker per provider matching query, in result order
func (s *MapService) Markers(ctx context.Context, query entities.ProviderQuery) (*entities.MapView, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	matches := queryservices.FilterAndSort(catalog, query)
	markers := make([]entities.MapMarker, len(matches))
	for i, p := range matches {
		markers[i] = entities.MapMarker{
			ProviderID:  p.ID,
			Label:       p.Name,
			Coordinates: p.Coordinates,
		}
	}

	return s.renderer.Render(ctx, markers)
}
