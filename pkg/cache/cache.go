package cache

import (
	"context"
	"time"
)

// Cache defines the contract for the cache layer, allowing the
// implementation (Redis, in-memory) to be swapped in tests.
type Cache interface {
	// Get fetches data from cache and unmarshals it into dest.
	// Returns found=false on cache miss; dest is left untouched.
	Get(ctx context.Context, key string, dest interface{}) (bool, error)

	// Set stores data in cache with a TTL.
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error

	// Delete removes keys from cache.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes every key matching a glob pattern.
	DeletePattern(ctx context.Context, pattern string) error

	// Ping verifies connectivity.
	Ping(ctx context.Context) error
}
