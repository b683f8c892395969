package session

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/alamin-islam0/care-xyz-frontend/internal/config"
)

// NewCache connects the hydration cache. Returns nil when no redis address
// is configured; the manager then hits the backend on every page view.
func NewCache(cfg *config.Config) (*redis.Client, error) {
	if !cfg.CacheEnabled() {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
