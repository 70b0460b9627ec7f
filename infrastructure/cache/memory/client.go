// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Entries expire per TTL and a janitor goroutine purges them periodically

package memory

import (
	"context"
	"errors"
	"time"

	"textkit/pkg/config"

	gocache "github.com/patrickmn/go-cache"
)

// ErrNotFound is returned for missing or expired keys
var ErrNotFound = errors.New("key not found")

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance
func NewMemoryCache(cfg config.MemoryConfig) *MemoryCache {
	expiration := gocache.NoExpiration
	if cfg.DefaultExpiration > 0 {
		expiration = time.Duration(cfg.DefaultExpiration) * time.Second
	}
	cleanup := 10 * time.Minute
	if cfg.CleanupInterval > 0 {
		cleanup = time.Duration(cfg.CleanupInterval) * time.Second
	}
	return &MemoryCache{
		store: gocache.New(expiration, cleanup),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.store.Get(key)
	if !ok {
		return nil, ErrNotFound
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.store.Set(key, valueCopy, ttl)
	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.store.Delete(key)
	return nil
}

// Len returns the number of stored entries, including expired ones not yet purged
func (c *MemoryCache) Len() int {
	return c.store.ItemCount()
}

// Flush removes every entry
func (c *MemoryCache) Flush() {
	c.store.Flush()
}
