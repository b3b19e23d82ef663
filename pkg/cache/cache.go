// Package cache stores computed layouts and statistics keyed by a hash of
// their inputs.
//
// Three backends implement [Cache]: [FileCache] for the CLI's on-disk cache,
// [RedisCache] for a cache shared between processes, and [NullCache] when
// caching is disabled. Keys are derived by a [Keyer] so that the same dataset
// computed with the same options always maps to the same entry.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values for cached entries.
const (
	LayoutTTL = 7 * 24 * time.Hour
	StatsTTL  = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with per-entry expiration.
//
// Get reports a miss with ok == false and a nil error. Implementations must
// be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
