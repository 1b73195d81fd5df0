package core

import (
	"portal/internal/cache"
	"portal/internal/models"

	"go.uber.org/zap"
)

// NewCache builds the configured cache backend. A nil configuration means no
// shared cache: the quota counter and conversation store run in-process.
func NewCache(config *models.CacheConfiguration) cache.ICache {
	if config == nil {
		return nil
	}

	var (
		client cache.ICache
		err    error
	)

	switch config.Type {
	case "redis":
		client, err = cache.NewRedisCache(*config.Redis)
	case "valkey":
		client, err = cache.NewValkeyCache(*config.Redis)
	default:
		return nil
	}

	if err != nil {
		zap.L().Fatal("Failed to connect to cache", zap.Error(err))
	}

	return client
}
