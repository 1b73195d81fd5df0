package core

import (
	"portal/internal/cache"
	"portal/internal/models"
	"portal/internal/ratelimit"
	"portal/internal/session"

	"go.uber.org/zap"
)

// NewSessionStore builds the conversation store. The cache-backed store
// requires a configured cache; single-instance deployments use memory.
func NewSessionStore(config models.SessionsConfiguration, c cache.ICache) session.IStore {
	switch config.Type {
	case "cache":
		if c == nil {
			zap.L().Fatal("Cache-backed sessions require a cache configuration")
		}
		return session.NewCacheStore(c)
	default:
		return session.NewMemoryStore()
	}
}

// NewSMSCounter builds the quota counter behind the daily limiter, shared
// through the cache when one is configured.
func NewSMSCounter(c cache.ICache) ratelimit.ICounter {
	if c != nil {
		return ratelimit.NewCacheCounter(c)
	}
	return ratelimit.NewMemoryCounter()
}
