package config

import (
	"fmt"

	"github.com/jarradburge/optivana-vanthex-monorepo/logger"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when REDIS_URL is unset; callers fall back to
// in-process implementations.
func ConnectRedis(cfg Config, log *logger.Logger) (*redis.Client, error) {
	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not set, using in-process rate limiting")
		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := WithTimeout()
	defer cancel()
	res, err := client.Ping(ctx).Result()
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Info("connected to redis", "ping", res)
	return client, nil
}
