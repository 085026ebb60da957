package newsprobe

import "context"

// Cache is a key-value cache port. Implementations decide eviction policy
// (TTL, max size). The cache is an injectable collaborator, never a
// module-level singleton, so the core stays testable in isolation.
type Cache interface {
	// Get returns the cached value for key, or false if absent or expired.
	Get(key string) (any, bool)

	// Set stores value under key.
	Set(key string, value any)

	// Delete removes key from the cache.
	Delete(key string)
}

// DomainLimiter provides per-domain rate limiting for outbound fetches.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
