// Package cache stores generated graphs and rendered artifacts so repeated
// runs with the same seed and parameters skip generation.
//
// Three backends implement [Cache]: [FileCache] for local CLI use,
// [RedisCache] for sharing results between machines that run the same
// stress suites, and [NullCache] when caching is disabled. Keys come from a
// [Keyer] and hash every parameter that affects the output.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key-value store with per-entry expiry.
type Cache interface {
	// Get returns the value for key. A missing or expired entry reports
	// hit == false with a nil error.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Close() error
}

// Default lifetimes. Generated graphs are a pure function of their key, so
// they only expire to bound disk usage.
const (
	TTLGraph    = 30 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)
