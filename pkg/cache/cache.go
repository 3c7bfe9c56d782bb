// Package cache stores raw registry responses between runs.
//
// Three backends implement [Cache]:
//   - [FileCache] keeps one JSON entry per key under a directory (CLI default)
//   - [RedisCache] shares entries through a Redis server
//   - [NullCache] disables caching
//
// Entries carry their own TTL; a TTL of zero never expires.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with per-entry expiry.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures, which callers are expected to treat as misses.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// DefaultTTL is how long registry responses stay valid.
const DefaultTTL = 24 * time.Hour
