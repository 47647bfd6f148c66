// Package memory provides in-process, size-bounded stores with TTL eviction.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

type entry[T any] struct {
	value    T
	storedAt time.Time
}

// cache is an RWMutex-guarded map with expiry and a size bound. When full,
// the oldest entry is evicted.
type cache[T any] struct {
	mu         sync.RWMutex
	items      map[uuid.UUID]entry[T]
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func newCache[T any](ttl time.Duration, maxEntries int) *cache[T] {
	return &cache[T]{
		items:      make(map[uuid.UUID]entry[T]),
		ttl:        ttl,
		maxEntries: maxEntries,
		now:        time.Now,
	}
}

func (c *cache[T]) put(id uuid.UUID, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	c.evictExpired(now)
	if _, exists := c.items[id]; !exists && c.maxEntries > 0 {
		for len(c.items) >= c.maxEntries {
			c.evictOldest()
		}
	}
	c.items[id] = entry[T]{value: v, storedAt: now}
}

func (c *cache[T]) get(id uuid.UUID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.items[id]
	if !ok || c.expired(e, c.now()) {
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *cache[T]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// expired reports whether e is past its TTL. A non-positive TTL never expires.
func (c *cache[T]) expired(e entry[T], now time.Time) bool {
	return c.ttl > 0 && now.Sub(e.storedAt) > c.ttl
}

// evictExpired must be called with mu held.
func (c *cache[T]) evictExpired(now time.Time) {
	for id, e := range c.items {
		if c.expired(e, now) {
			delete(c.items, id)
		}
	}
}

// evictOldest must be called with mu held.
func (c *cache[T]) evictOldest() {
	var oldestID uuid.UUID
	var oldest time.Time
	first := true
	for id, e := range c.items {
		if first || e.storedAt.Before(oldest) {
			oldestID, oldest, first = id, e.storedAt, false
		}
	}
	if !first {
		delete(c.items, oldestID)
	}
}
