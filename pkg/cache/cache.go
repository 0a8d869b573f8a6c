// Package cache provides byte-level caching with pluggable backends.
//
// The demo server uses it to cache rendered response documents, keyed by
// request path and query string. Entries carry a time-to-live; expired
// entries are treated as misses and removed lazily.
//
// Consumers report hits, misses, and writes through the observability
// hooks, so a registered backend can count cache traffic without this
// package depending on any metrics framework.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte payloads under string keys.
//
// Implementations must treat a missing key as (nil, false, nil), reserving
// errors for genuine I/O failures. A ttl of 0 means the entry never
// expires.
type Cache interface {
	// Get retrieves the payload stored under key. The second return value
	// reports whether the entry was found and fresh.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key with the given time-to-live.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes the entry for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}
