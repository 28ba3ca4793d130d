// Package cache provides in-memory caching implementations.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/nwilmet-vivlio/swift-toolkit/settings"
)

// item represents a single cache item with a value and an expiration time.
type item struct {
	value      []byte
	expiration time.Time
}

// MemoryCache implements the Cache interface using an in-memory store.
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]item
	stop  chan struct{}
	once  sync.Once
}

// NewMemoryCache initializes a new MemoryCache instance. It starts a
// garbage collection goroutine to clean expired items.
func NewMemoryCache() *MemoryCache {
	cache := &MemoryCache{
		items: make(map[string]item),
		stop:  make(chan struct{}),
	}
	go cache.gc()
	return cache
}

// Get retrieves a value from the memory cache by key. It returns
// settings.ErrNotFound if the key does not exist or has expired.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, exists := c.items[key]
	if !exists {
		return nil, settings.ErrNotFound
	}

	if !it.expiration.IsZero() && time.Now().After(it.expiration) {
		// Expired entries count as a miss; gc reclaims them later.
		return nil, settings.ErrNotFound
	}

	return it.value, nil
}

// Set stores a value in the memory cache. A non-positive ttl keeps the
// entry until it is deleted.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expiration time.Time
	if ttl > 0 {
		expiration = time.Now().Add(ttl)
	}

	c.items[key] = item{
		value:      append([]byte(nil), value...),
		expiration: expiration,
	}
	return nil
}

// Delete removes a value from the memory cache.
func (c *MemoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
	return nil
}

// Close stops the garbage collection goroutine. It is safe to call more
// than once.
func (c *MemoryCache) Close() error {
	c.once.Do(func() {
		close(c.stop)
	})
	return nil
}

// gc periodically removes expired items.
func (c *MemoryCache) gc() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			now := time.Now()
			c.mu.Lock()
			for key, it := range c.items {
				if !it.expiration.IsZero() && now.After(it.expiration) {
					delete(c.items, key)
				}
			}
			c.mu.Unlock()
		case <-c.stop:
			return
		}
	}
}
