package ratelimit

import (
	"context"

	"portal/internal/cache"
)

// CacheCounter backs the limiter with the shared cache's atomic INCR.
type CacheCounter struct {
	cache cache.ICache
}

func NewCacheCounter(c cache.ICache) *CacheCounter {
	return &CacheCounter{cache: c}
}

func (c *CacheCounter) Increment(ctx context.Context, phone string, day string) (int64, error) {
	return c.cache.IncrementSMSCount(ctx, phone, day)
}
