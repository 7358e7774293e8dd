package store

import (
	"context"
	"time"

	"github.com/leonardcser/offstore/internal/record"
)

// CachePut stores value under the cache namespace with the given ttl.
// A ttl <= 0 means the entry never expires. Re-putting a name replaces
// the value and restarts its TTL window.
func (s *Store) CachePut(ctx context.Context, name string, value any, ttl time.Duration) error {
	return s.write(ctx, record.KindCache, name, value, ttl)
}

// CacheGet loads the cached value for name into out. A missing, stale,
// or unusable entry reports ok=false; staleness is a normal outcome,
// never an error.
func (s *Store) CacheGet(ctx context.Context, name string, out any) bool {
	return s.read(ctx, record.KindCache, name, out, false)
}

// CacheGetStale is CacheGet without the staleness check: it returns the
// last written value even past its TTL, for callers that want
// last-known-good data while a refresh is in flight.
func (s *Store) CacheGetStale(ctx context.Context, name string, out any) bool {
	return s.read(ctx, record.KindCache, name, out, true)
}

// InvalidateCache removes the named cache entries, or with no arguments
// every entry in the cache namespace. Other namespaces are untouched.
func (s *Store) InvalidateCache(ctx context.Context, names ...string) error {
	if len(names) == 0 {
		return s.purge(ctx, record.KindCache)
	}
	for _, name := range names {
		if err := s.kv.Delete(ctx, record.KindCache.Key(name)); err != nil {
			return err
		}
	}
	return nil
}
