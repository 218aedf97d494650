package cache

import (
	"context"
	"errors"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../../mocks/cache_mocks.go -package=mocks

// ErrCacheMiss is returned by Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// Store is a key-value cache with per-entry TTL. Values are raw bytes;
// callers marshal whatever aggregate they memoize.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// GetOrCompute returns the cached value for key, or runs compute and stores
// the result for ttl. The cache is best effort: any store error on read is
// treated as a miss and a failed write does not fail the request. There is
// deliberately no stampede protection; concurrent misses on the same key each
// invoke compute and the last writer wins.
func GetOrCompute(ctx context.Context, store Store, key string, ttl time.Duration, compute func(ctx context.Context) ([]byte, error)) ([]byte, error) {
	if cached, err := store.Get(ctx, key); err == nil {
		return cached, nil
	}

	value, err := compute(ctx)
	if err != nil {
		return nil, err
	}

	_ = store.Set(ctx, key, value, ttl)

	return value, nil
}
