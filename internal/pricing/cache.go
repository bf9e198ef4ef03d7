package pricing

import (
	"sync"
	"time"
)

// DefaultTTL is how long a live price stays servable before it must be
// refreshed.
const DefaultTTL = time.Hour

// Cache is an in-memory price cache with a single global TTL. Entries older
// than the TTL are treated as absent, never served. Concurrent writers to
// the same key are last-writer-wins; value and timestamp are written
// together under the lock so an entry is structurally atomic.
//
// The cache is an explicitly owned, constructor-provided object so tests can
// run without shared global state.
type Cache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	entries map[Key]cacheEntry
}

type cacheEntry struct {
	amount   float64
	storedAt time.Time
}

// NewCache returns a Cache with the given TTL; ttl <= 0 selects DefaultTTL.
func NewCache(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[Key]cacheEntry),
	}
}

// Get returns the cached amount for key if present and within TTL.
func (c *Cache) Get(key Key) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok {
		return 0, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		return 0, false
	}
	return entry.amount, true
}

// Put stores a freshly resolved amount for key.
func (c *Cache) Put(key Key, amount float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{amount: amount, storedAt: c.now()}
}

// Len reports the number of entries, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// SetClock replaces the cache's time source. Test hook.
func (c *Cache) SetClock(now func() time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
}
