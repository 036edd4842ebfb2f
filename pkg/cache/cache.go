// Package cache stores derived data between runs so repeated commands can
// skip work whose inputs did not change.
//
// The only derived data today is the node/edge count of an exported GraphML
// file. Entries are keyed by the SHA-256 of the file contents, so a rewritten
// graph gets a fresh key and stale entries are never served.
package cache

import (
	"context"
	"time"
)

// TTLStats is how long a graph shape entry stays valid. Shape entries are
// content-addressed, so the TTL only bounds disk usage.
const TTLStats = 30 * 24 * time.Hour

// Cache is a byte-oriented key/value store.
//
// Implementations must treat a missing or expired key as a miss (hit=false,
// err=nil). Callers never fail a run because of cache errors.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer derives cache keys.
type Keyer interface {
	// StatsKey returns the key for the shape of a graph whose file contents
	// hash to contentHash.
	StatsKey(contentHash string) string
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a [DefaultKeyer].
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// StatsKey implements [Keyer].
func (DefaultKeyer) StatsKey(contentHash string) string {
	return hashKey("graphstats", "v1", contentHash)
}

// NullCache never stores anything. It backs --no-cache and tests.
type NullCache struct{}

// NewNullCache returns a cache that always misses.
func NewNullCache() Cache {
	return NullCache{}
}

func (NullCache) Get(context.Context, string) ([]byte, bool, error)        { return nil, false, nil }
func (NullCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (NullCache) Delete(context.Context, string) error                     { return nil }
func (NullCache) Close() error                                             { return nil }

var (
	_ Cache = NullCache{}
	_ Keyer = DefaultKeyer{}
)
