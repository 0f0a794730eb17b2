// Package cache provides a small in-process TTL cache used for data
// that is read on every document render but rarely changes, such as
// terms and conditions.
package cache

import (
	"sync"
	"time"
)

// Clock abstracts time for tests
type Clock func() time.Time

type item[V any] struct {
	value     V
	expiresAt time.Time
}

// TTL is a concurrency-safe cache whose entries expire after a fixed
// duration. Expired entries are dropped lazily on access.
type TTL[V any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   Clock
	items map[string]item[V]
}

// NewTTL creates a cache with the given entry lifetime
func NewTTL[V any](ttl time.Duration) *TTL[V] {
	return NewTTLWithClock[V](ttl, time.Now)
}

// NewTTLWithClock creates a cache with an injectable clock for tests
func NewTTLWithClock[V any](ttl time.Duration, now Clock) *TTL[V] {
	return &TTL[V]{
		ttl:   ttl,
		now:   now,
		items: make(map[string]item[V]),
	}
}

// Get returns the cached value and whether it is still fresh
func (c *TTL[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	it, ok := c.items[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.now().After(it.expiresAt) {
		delete(c.items, key)
		var zero V
		return zero, false
	}
	return it.value, true
}

// Set stores a value under key, restarting its lifetime
func (c *TTL[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item[V]{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate removes one key immediately
func (c *TTL[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Purge removes every entry
func (c *TTL[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[string]item[V])
}
