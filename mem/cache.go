// Package mem provides an in-memory implementation of televideo.Cache
// with a fixed freshness window.
package mem

import (
	"sync"
	"time"

	"github.com/fwojciec/televideo"
)

// Ensure Cache implements televideo.Cache at compile time.
var _ televideo.Cache[int] = (*Cache[int])(nil)

// Cache is a freshness-aware key/value store guarded by a mutex, so it
// is safe for hosts that fetch from multiple goroutines. Staleness is
// checked lazily at read time; nothing is swept proactively and stale
// entries survive until overwritten or cleared.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[televideo.PageID]entry[V]
	ttl     time.Duration
	now     func() time.Time
}

type entry[V any] struct {
	value      V
	capturedAt time.Time
}

// Option configures a Cache.
type Option[V any] func(*Cache[V])

// WithNow overrides the clock used for capture instants and freshness
// checks. Intended for tests.
func WithNow[V any](now func() time.Time) Option[V] {
	return func(c *Cache[V]) {
		c.now = now
	}
}

// New creates an empty Cache whose entries stay fresh for ttl.
func New[V any](ttl time.Duration, opts ...Option[V]) *Cache[V] {
	c := &Cache[V]{
		entries: make(map[televideo.PageID]entry[V]),
		ttl:     ttl,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetFresh returns the value for id if an entry exists and was captured
// less than the freshness window ago.
func (c *Cache[V]) GetFresh(id televideo.PageID) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok || c.now().Sub(e.capturedAt) >= c.ttl {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put inserts or replaces the entry for id, stamping it with the current
// instant.
func (c *Cache[V]) Put(id televideo.PageID, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[id] = entry[V]{value: value, capturedAt: c.now()}
}

// Clear removes all entries.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[televideo.PageID]entry[V])
}

// Len reports the number of entries currently held, fresh or stale.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
