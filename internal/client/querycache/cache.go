// Package querycache implements the remote query cache: a keyed
// fetch-and-cache mechanism with per-entry staleness windows. It is the
// only component that talks to the network on the read path; domain
// stores never reach into it; they go through its explicit interface.
package querycache

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

type entry struct {
	value     any
	expiresAt time.Time
}

// Cache is an in-memory fetch-through cache. A fresh entry is returned
// as-is; a stale or absent entry triggers a fetch whose result replaces
// it. Concurrent fetches for the same key are collapsed into one via
// singleflight. Fetch errors are returned to the caller and never cached.
type Cache struct {
	entries map[string]entry
	group   singleflight.Group
	mu      sync.Mutex
	now     func() time.Time
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Peek returns the cached value for key without fetching, fresh or
// stale. Staleness only governs refetch eligibility in GetOrFetch; a
// previously fetched value is still a valid answer for read paths that
// explicitly prefer avoiding a network round-trip.
func (c *Cache) Peek(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	return e.value, true
}

// GetOrFetch returns the cached value for key while it is fresh,
// otherwise runs fetch and caches its result for ttl.
func (c *Cache) GetOrFetch(ctx context.Context, key string, ttl time.Duration, fetch func(ctx context.Context) (any, error)) (any, error) {
	c.mu.Lock()
	if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
		c.mu.Unlock()
		return e.value, nil
	}
	c.mu.Unlock()

	// Просроченная или отсутствующая запись: выполняем fetch один раз
	// на все одновременные вызовы с этим ключом
	value, err, _ := c.group.Do(key, func() (any, error) {
		// Повторная проверка: параллельный вызов мог уже обновить запись
		c.mu.Lock()
		if e, ok := c.entries[key]; ok && c.now().Before(e.expiresAt) {
			c.mu.Unlock()
			return e.value, nil
		}
		c.mu.Unlock()

		v, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{value: v, expiresAt: c.now().Add(ttl)}
		c.mu.Unlock()

		return v, nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}

// Invalidate drops the entry for key, forcing the next GetOrFetch to hit
// the network.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Flush drops all entries.
func (c *Cache) Flush() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}
