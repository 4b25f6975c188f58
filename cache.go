package televideo

// Cache is a freshness-aware store keyed by PageID. The text and image
// caches are independent instances of this interface, so a concurrent
// host can swap in a synchronized or sharded implementation without
// touching the Content Client's fetch logic.
type Cache[V any] interface {
	// GetFresh returns the cached value for id if one exists and is
	// still within the freshness window. Stale entries are reported as
	// misses but are not removed; they stay in place until overwritten
	// or cleared.
	GetFresh(id PageID) (V, bool)

	// Put inserts or replaces the entry for id, resetting its capture
	// instant to now.
	Put(id PageID, value V)

	// Clear unconditionally empties the cache.
	Clear()
}
