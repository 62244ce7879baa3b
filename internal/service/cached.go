package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"trivia-coffee/internal/domain"
	"trivia-coffee/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// readCache fronts a loader with the shared cache. Concurrent misses on the
// same key share one load; invalidations bump generation so that a load
// started before them never repopulates the cache.
type readCache struct {
	cache      domain.Cache
	ttl        time.Duration
	group      singleflight.Group
	generation atomic.Uint64
}

func newReadCache(cache domain.Cache, ttl time.Duration) *readCache {
	return &readCache{cache: cache, ttl: ttl}
}

// readThrough serves key from cache when possible, otherwise loads it once
// and stores the result for ttl. The shared load is detached from the
// caller's cancellation since other callers may be waiting on it; each caller
// still stops waiting when its own ctx is done.
// Cache failures are logged and never fail the request.
func readThrough[T any](ctx context.Context, rc *readCache, key string, load func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if rc.cache != nil {
		cached, err := rc.cache.Get(ctx, key)
		switch {
		case err == nil:
			var value T
			jsonErr := json.Unmarshal([]byte(cached), &value)
			if jsonErr == nil {
				return value, nil
			}
			logger.Get().Warn("Discarding undecodable cache entry", zap.String("key", key), zap.Error(jsonErr))
		case !errors.Is(err, domain.ErrCacheMiss):
			logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	loadCtx := context.WithoutCancel(ctx)
	ch := rc.group.DoChan(key, func() (interface{}, error) {
		gen := rc.generation.Load()
		value, err := load(loadCtx)
		if err != nil {
			return value, err
		}
		rc.store(loadCtx, key, value, gen)
		return value, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// store writes value unless key was invalidated after the load began.
func (rc *readCache) store(ctx context.Context, key string, value interface{}, gen uint64) {
	if rc.cache == nil || rc.generation.Load() != gen {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := rc.cache.Set(ctx, key, string(data), rc.ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
		return
	}
	// An invalidation may have landed between the check and the write.
	if rc.generation.Load() != gen {
		rc.drop(ctx, key)
	}
}

// invalidate drops keys from cache and detaches in-flight loads from later
// callers, logging failures.
func (rc *readCache) invalidate(ctx context.Context, keys ...string) {
	rc.generation.Add(1)
	for _, key := range keys {
		rc.group.Forget(key)
	}
	rc.drop(ctx, keys...)
}

func (rc *readCache) drop(ctx context.Context, keys ...string) {
	if rc.cache == nil {
		return
	}
	if err := rc.cache.Delete(ctx, keys...); err != nil {
		logger.Get().Warn("Cache invalidation failed", zap.Strings("keys", keys), zap.Error(err))
	}
}
