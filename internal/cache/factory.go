package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/redis"
)

type Config struct {
	Provider      string // memory, redis, none
	TTL           time.Duration
	MaxEntries    int
	RedisAddr     string
	RedisPassword string
}

func New(ctx context.Context, cfg *Config, logger *zerolog.Logger) (Cache, error) {
	// If provider is empty, fallback to the default configuration.
	provider := cfg.Provider
	if provider == "" {
		provider = "memory"
	}

	switch provider {
	case "memory":
		return NewMemoryCache(cfg.TTL, cfg.MaxEntries), nil

	case "redis":
		if cfg.RedisAddr == "" {
			return nil, fmt.Errorf("redis address required")
		}

		client, err := redis.ConnectRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
		if err != nil {
			return nil, err
		}

		return NewRedisCache(client, cfg.TTL, logger), nil

	case "none":
		return NoopCache{}, nil

	default:
		return nil, fmt.Errorf("unsupported cache provider: %s", cfg.Provider)
	}
}
