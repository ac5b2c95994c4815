package cache

import (
	"sync"
	"time"

	"aivault.backend/internal/domain/entities"
)

// DirectoryCache holds the most recently built directory snapshot. A single
// snapshot covers the whole directory; any write to a business or its child
// rows invalidates it.
type DirectoryCache struct {
	mu        sync.RWMutex
	entries   []*entities.DirectoryEntry
	expiresAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewDirectoryCache creates a cache with the given TTL. A zero or negative
// TTL disables caching entirely.
func NewDirectoryCache(ttl time.Duration) *DirectoryCache {
	return &DirectoryCache{
		ttl: ttl,
		now: time.Now,
	}
}

// NewDirectoryCacheWithClock is like NewDirectoryCache with an injected
// clock for tests.
func NewDirectoryCacheWithClock(ttl time.Duration, now func() time.Time) *DirectoryCache {
	return &DirectoryCache{
		ttl: ttl,
		now: now,
	}
}

// Get returns the cached snapshot, or nil and false when the cache is empty
// or past its TTL.
func (c *DirectoryCache) Get() ([]*entities.DirectoryEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.entries == nil {
		return nil, false
	}
	if !c.now().Before(c.expiresAt) {
		return nil, false
	}
	return c.entries, true
}

// Set stores a freshly built snapshot and restarts the TTL window.
func (c *DirectoryCache) Set(entries []*entities.DirectoryEntry) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = entries
	c.expiresAt = c.now().Add(c.ttl)
}

// Invalidate drops the snapshot. The next Get misses and forces a rebuild.
func (c *DirectoryCache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.expiresAt = time.Time{}
}
