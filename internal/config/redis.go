package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient creates a new Redis client for the solve-result cache.
// A failed ping does not abort startup -- the cache degrades to a
// pass-through and every solve runs the engine fresh.
func NewRedisClient(cfg *Config, logger *zap.Logger) *redis.Client {
	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		logger.Error("invalid REDIS_URL, cache disabled", zap.Error(err))
		opts = &redis.Options{Addr: "localhost:6379"}
	}
	opts.DialTimeout = 5 * time.Second
	opts.ReadTimeout = 3 * time.Second
	opts.WriteTimeout = 3 * time.Second

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, result cache disabled", zap.Error(err))
	} else {
		logger.Info("redis connected", zap.String("addr", opts.Addr))
	}

	return client
}
