// Package cache holds short-lived in-process read caches keyed by entity id.
package cache

import (
	"sync"
	"time"
)

const DefaultTTL = 5 * time.Minute

type entry[T any] struct {
	value     T
	fetchedAt time.Time
}

// EntityCache is a TTL cache keyed by id. Writers call Invalidate on every
// mutation of the entity; there is no background refresh.
type EntityCache[K comparable, T any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[K]entry[T]
	// version is bumped by every Invalidate.
	version uint64
}

func New[K comparable, T any](ttl time.Duration) *EntityCache[K, T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &EntityCache[K, T]{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[K]entry[T]),
	}
}

// WithClock swaps the time source, for tests.
func (c *EntityCache[K, T]) WithClock(now func() time.Time) *EntityCache[K, T] {
	c.now = now
	return c
}

func (c *EntityCache[K, T]) Get(id K) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[id]
	c.mu.RUnlock()
	if ok && c.now().Sub(e.fetchedAt) < c.ttl {
		return e.value, true
	}
	if ok {
		c.mu.Lock()
		if cur, still := c.entries[id]; still && cur.fetchedAt.Equal(e.fetchedAt) {
			delete(c.entries, id)
		}
		c.mu.Unlock()
	}
	var zero T
	return zero, false
}

func (c *EntityCache[K, T]) Set(id K, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[id] = entry[T]{value: value, fetchedAt: c.now()}
}

// Version returns the invalidation counter. Read it before loading a value
// from the source and hand it to SetIfVersion.
func (c *EntityCache[K, T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// SetIfVersion stores value only if no Invalidate ran since version was read,
// so a load that raced a write cannot put the old value back.
func (c *EntityCache[K, T]) SetIfVersion(id K, value T, version uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.version != version {
		return false
	}
	c.entries[id] = entry[T]{value: value, fetchedAt: c.now()}
	return true
}

func (c *EntityCache[K, T]) Invalidate(id K) {
	c.mu.Lock()
	delete(c.entries, id)
	c.version++
	c.mu.Unlock()
}

func (c *EntityCache[K, T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
