package repositories

import (
	"context"

	"github.com/winnipegconnect/backend/internal/domain/entities"
)

// ProviderRepository defines the interface for provider catalog access
type ProviderRepository interface {
	// List returns the whole catalog in catalog order
	List(ctx context.Context) ([]*entities.Provider, error)

	// GetByID retrieves a provider by ID
	GetByID(ctx context.Context, id int) (*entities.Provider, error)

	// Create adds a provider to the catalog
	Create(ctx context.Context, provider *entities.Provider) error
}

// ProviderSearchRepository defines the interface for the provider search index (e.g. Typesense)
type ProviderSearchRepository interface {
	// Index adds or replaces a provider document
	Index(ctx context.Context, provider *entities.Provider) error

	// Delete removes a provider from the index
	Delete(ctx context.Context, id int) error

	// Suggest returns provider IDs whose name starts with prefix, best match first
	Suggest(ctx context.Context, prefix string, limit int) ([]int, error)
}
