// Package cache holds the response cache used by the movie proxy.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cineverse/internal/config"
)

// ResponseCache stores raw upstream response bodies for a fixed TTL.
// Implementations must be safe for concurrent use. A failed lookup is
// reported as a miss.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// New builds the backend selected by CACHE_BACKEND.
func New(cfg *config.Config, logger *slog.Logger) (ResponseCache, error) {
	switch cfg.CacheBackend {
	case BackendMemory, "":
		logger.Info("proxy cache ready", "backend", BackendMemory, "capacity", cfg.CacheCapacity, "ttl", cfg.CacheTTL)
		return NewMemoryCache(cfg.CacheCapacity, cfg.CacheTTL), nil
	case BackendRedis:
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		rc, err := NewRedisCache(ctx, cfg.RedisURL, cfg.CacheTTL, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("proxy cache ready", "backend", BackendRedis, "ttl", cfg.CacheTTL)
		return rc, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.CacheBackend)
	}
}
