package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/winnipegconnect/backend/internal/domain/entities"
	"github.com/winnipegconnect/backend/internal/domain/providers"
	"github.com/winnipegconnect/backend/internal/domain/repositories"
	"github.com/winnipegconnect/backend/internal/infrastructure/observability"
)

// Cache TTLs (in seconds)
const (
	providerByIDTTL  = 300
	providerListTTL  = 600
	providerListKey  = "providers:list"
	providerKeyspace = "providers"
)

func providerCacheKey(id int) string {
	return fmt.Sprintf("provider:%d", id)
}

// CachedProviderAdapter wraps a ProviderRepository with a read-through cache
type CachedProviderAdapter struct {
	adapter repositories.ProviderRepository
	cache   providers.CacheProvider
	metrics *observability.Metrics
}

// NewCachedProviderAdapter creates a new cached provider adapter. metrics may be nil.
func NewCachedProviderAdapter(adapter repositories.ProviderRepository, cache providers.CacheProvider, metrics *observability.Metrics) *CachedProviderAdapter {
	return &CachedProviderAdapter{
		adapter: adapter,
		cache:   cache,
		metrics: metrics,
	}
}

// List returns the catalog, from cache when possible
func (a *CachedProviderAdapter) List(ctx context.Context) ([]*entities.Provider, error) {
	if cached, err := a.cache.Get(ctx, providerListKey); err == nil {
		var list []*entities.Provider
		if err := json.Unmarshal(cached, &list); err == nil {
			observability.RecordCacheHit(ctx, a.metrics, providerKeyspace)
			return list, nil
		}
		log.Warn().Err(err).Msg("failed to unmarshal cached provider list")
	}
	observability.RecordCacheMiss(ctx, a.metrics, providerKeyspace)

	list, err := a.adapter.List(ctx)
	if err != nil {
		return nil, err
	}

	// Update cache asynchronously to avoid blocking the response
	go a.store(context.Background(), providerListKey, list, providerListTTL)

	return list, nil
}

// GetByID retrieves a provider, from cache when possible
func (a *CachedProviderAdapter) GetByID(ctx context.Context, id int) (*entities.Provider, error) {
	key := providerCacheKey(id)

	if cached, err := a.cache.Get(ctx, key); err == nil {
		var p entities.Provider
		if err := json.Unmarshal(cached, &p); err == nil {
			observability.RecordCacheHit(ctx, a.metrics, providerKeyspace)
			return &p, nil
		}
		log.Warn().Err(err).Int("provider_id", id).Msg("failed to unmarshal cached provider")
	}
	observability.RecordCacheMiss(ctx, a.metrics, providerKeyspace)

	p, err := a.adapter.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	go a.store(context.Background(), key, p, providerByIDTTL)

	return p, nil
}

// Create inserts a provider and invalidates the cached list
func (a *CachedProviderAdapter) Create(ctx context.Context, p *entities.Provider) error {
	if err := a.adapter.Create(ctx, p); err != nil {
		return err
	}

	for _, key := range []string{providerListKey, providerCacheKey(p.ID)} {
		if err := a.cache.Delete(ctx, key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to invalidate provider cache")
		}
	}
	return nil
}

// Refresh reloads the catalog from the underlying repository and rewrites
// the list and per-provider entries. It returns the number of providers cached.
func (a *CachedProviderAdapter) Refresh(ctx context.Context) (int, error) {
	list, err := a.adapter.List(ctx)
	if err != nil {
		return 0, err
	}

	if err := a.store(ctx, providerListKey, list, providerListTTL); err != nil {
		return 0, err
	}
	for _, p := range list {
		if err := a.store(ctx, providerCacheKey(p.ID), p, providerByIDTTL); err != nil {
			return 0, err
		}
	}
	return len(list), nil
}

func (a *CachedProviderAdapter) store(ctx context.Context, key string, value interface{}, ttl int) error {
	data, err := json.Marshal(value)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to marshal cache entry")
		return err
	}
	if err := a.cache.Set(ctx, key, data, ttl); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to write cache entry")
		return err
	}
	return nil
}
