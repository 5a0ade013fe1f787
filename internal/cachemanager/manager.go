// Package cachemanager provides a small generic cache abstraction backed by
// go-cache. Keyword lookups go through it so that repeated queries for the
// same identifier (one per keystroke) skip the table scan.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values by key with a per-entry TTL.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Flush(ctx context.Context) error
	ItemCount() int
}
