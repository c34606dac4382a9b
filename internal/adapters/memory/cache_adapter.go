package memory

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/winnipegconnect/backend/internal/domain/providers"
)

const (
	// DefaultCacheSize bounds the number of entries held in process
	DefaultCacheSize = 10000
	// DefaultCacheTTL is the longest any entry is kept
	DefaultCacheTTL = 24 * time.Hour
)

type cacheEntry struct {
	value     []byte
	expiresAt time.Time
}

func (e cacheEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// CacheAdapter is an in-process CacheProvider used when Redis is disabled.
// Entries live in an expiring LRU, so the cache is bounded in size and every
// entry is evicted after at most maxTTL; shorter per-key expirations are
// honored on read.
type CacheAdapter struct {
	lru *expirable.LRU[string, cacheEntry]
	now func() time.Time
}

var _ providers.CacheProvider = (*CacheAdapter)(nil)

// NewCacheAdapter creates an empty in-memory cache with the default limits
func NewCacheAdapter() *CacheAdapter {
	return NewCacheAdapterWithLimits(DefaultCacheSize, DefaultCacheTTL)
}

// NewCacheAdapterWithLimits creates an in-memory cache holding at most size
// entries, each for at most maxTTL
func NewCacheAdapterWithLimits(size int, maxTTL time.Duration) *CacheAdapter {
	return &CacheAdapter{
		lru: expirable.NewLRU[string, cacheEntry](size, nil, maxTTL),
		now: time.Now,
	}
}

func (c *CacheAdapter) live(key string) (cacheEntry, bool) {
	entry, ok := c.lru.Get(key)
	if !ok {
		return cacheEntry{}, false
	}
	if entry.expired(c.now()) {
		c.lru.Remove(key)
		return cacheEntry{}, false
	}
	return entry, true
}

// Get retrieves a value from cache
func (c *CacheAdapter) Get(_ context.Context, key string) ([]byte, error) {
	entry, ok := c.live(key)
	if !ok {
		return nil, providers.ErrCacheMiss
	}
	return append([]byte(nil), entry.value...), nil
}

// Set stores a value. A non-positive expiration keeps it for the cache's
// maximum TTL.
func (c *CacheAdapter) Set(_ context.Context, key string, value []byte, expirationSeconds int) error {
	entry := cacheEntry{value: append([]byte(nil), value...)}
	if expirationSeconds > 0 {
		entry.expiresAt = c.now().Add(time.Duration(expirationSeconds) * time.Second)
	}
	c.lru.Add(key, entry)
	return nil
}

// Delete removes a value from cache
func (c *CacheAdapter) Delete(_ context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Exists checks if a live key exists in cache
func (c *CacheAdapter) Exists(_ context.Context, key string) (bool, error) {
	_, ok := c.live(key)
	return ok, nil
}

// Len returns the number of entries held, including ones whose per-key
// expiration has passed but have not been read since
func (c *CacheAdapter) Len() int {
	return c.lru.Len()
}
