// Package memory holds repositories backed by the fixture catalog loaded at
// start-up. The catalog is read-only; writes are rejected.
package memory

import (
	"context"
	"fmt"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	apperrors "github.com/winnipegconnect/backend/pkg/errors"
)

// ProviderAdapter serves providers from a fixed in-memory catalog
type ProviderAdapter struct {
	providers []*entities.Provider
	byID      map[int]*entities.Provider
}

var _ repositories.ProviderRepository = (*ProviderAdapter)(nil)

// NewProviderAdapter creates a repository over catalog. The slice is owned
// by the adapter afterwards and never modified.
func NewProviderAdapter(catalog []*entities.Provider) *ProviderAdapter {
	byID := make(map[int]*entities.Provider, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}
	return &ProviderAdapter{providers: catalog, byID: byID}
}

// List returns a copy of the catalog slice in catalog order
func (a *ProviderAdapter) List(_ context.Context) ([]*entities.Provider, error) {
	out := make([]*entities.Provider, len(a.providers))
	copy(out, a.providers)
	return out, nil
}

// GetByID retrieves a provider by ID
func (a *ProviderAdapter) GetByID(_ context.Context, id int) (*entities.Provider, error) {
	p, ok := a.byID[id]
	if !ok {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("provider %d not found", id))
	}
	return p, nil
}

// Create always fails; the fixture catalog is immutable
func (a *ProviderAdapter) Create(_ context.Context, provider *entities.Provider) error {
	return apperrors.NewConflictError(fmt.Sprintf("cannot add provider %d: fixture catalog is read-only", provider.ID))
}
