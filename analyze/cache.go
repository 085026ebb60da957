package analyze

import (
	"sync"
	"time"

	"github.com/mjarosz/newsprobe"
)

var _ newsprobe.Cache = (*TTLCache)(nil)

// TTLCache is an in-memory cache with per-entry expiry and a size cap.
// When the cap is reached, expired entries are dropped first and then the
// entry closest to expiry is evicted. TTLCache is safe for concurrent use.
type TTLCache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	maxSize int
	now     func() time.Time
}

type cacheEntry struct {
	value   any
	expires time.Time
}

// NewTTLCache creates a cache holding at most maxSize entries, each
// expiring ttl after being set.
func NewTTLCache(ttl time.Duration, maxSize int) *TTLCache {
	return &TTLCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		maxSize: maxSize,
		now:     time.Now,
	}
}

// Get returns the cached value for key, or false if absent or expired.
func (c *TTLCache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().After(entry.expires) {
		delete(c.entries, key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key.
func (c *TTLCache) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxSize {
		c.evictLocked()
	}

	c.entries[key] = cacheEntry{
		value:   value,
		expires: c.now().Add(c.ttl),
	}
}

// Delete removes key from the cache.
func (c *TTLCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Len returns the number of live entries.
func (c *TTLCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// evictLocked makes room for one entry. Must be called with mu held.
func (c *TTLCache) evictLocked() {
	now := c.now()
	for key, entry := range c.entries {
		if now.After(entry.expires) {
			delete(c.entries, key)
		}
	}
	if len(c.entries) < c.maxSize {
		return
	}

	var oldestKey string
	var oldestExpiry time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expires.Before(oldestExpiry) {
			oldestKey = key
			oldestExpiry = entry.expires
		}
	}
	delete(c.entries, oldestKey)
}
