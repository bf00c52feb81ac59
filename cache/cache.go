// ABOUTME: In-memory typed cache with TTL-based expiration
// ABOUTME: Thread-safe; used for preset scenario plans at the HTTP layer

package cache

import (
	"log/slog"
	"sync"
	"time"
)

type entry[V any] struct {
	value     V
	expiresAt time.Time
}

// Cache is a TTL cache for values of type V. Expired entries are
// dropped lazily on Get; the working set here is a handful of preset
// scenario plans, so no background sweeper is needed.
type Cache[V any] struct {
	mu    sync.RWMutex
	store map[string]entry[V]
	ttl   time.Duration
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{
		store: make(map[string]entry[V]),
		ttl:   ttl,
	}
}

func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.store[key]
	c.mu.RUnlock()

	var zero V
	if !ok {
		slog.Debug("Cache miss", "key", key)
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.store, key)
		c.mu.Unlock()
		slog.Debug("Cache expired", "key", key)
		return zero, false
	}

	slog.Debug("Cache hit", "key", key)
	return e.value, true
}

func (c *Cache[V]) Set(key string, value V) {
	c.mu.Lock()
	c.store[key] = entry[V]{value: value, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	slog.Debug("Cache set", "key", key, "ttl", c.ttl)
}

func (c *Cache[V]) Clear(key string) {
	c.mu.Lock()
	delete(c.store, key)
	c.mu.Unlock()
}
