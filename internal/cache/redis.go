package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/povarna/generative-ai-agents/wireframe-agent/internal/models"
)

const redisKeyPrefix = "wireframe:cache:"

// RedisCache shares entries across instances. Errors degrade to cache
// misses; a broken cache must never fail a generation.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zerolog.Logger
}

func NewRedisCache(client *redis.Client, ttl time.Duration, logger *zerolog.Logger) *RedisCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisCache) Get(ctx context.Context, key string) (*models.WireframeResponse, bool) {
	payload, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn().Err(err).Msg("Cache read failed")
		}
		return nil, false
	}

	var response models.WireframeResponse
	if err := json.Unmarshal(payload, &response); err != nil {
		c.logger.Warn().Err(err).Str("key", key).Msg("Dropping undecodable cache entry")
		c.client.Del(ctx, redisKeyPrefix+key)
		return nil, false
	}

	return &response, true
}

func (c *RedisCache) Set(ctx context.Context, key string, response *models.WireframeResponse) {
	payload, err := json.Marshal(response)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Cache write skipped")
		return
	}

	if err := c.client.Set(ctx, redisKeyPrefix+key, payload, c.ttl).Err(); err != nil {
		c.logger.Warn().Err(err).Msg("Cache write failed")
	}
}

func (c *RedisCache) Stats(ctx context.Context) Stats {
	stats := Stats{
		Provider: "redis",
		Enabled:  true,
		TTL:      int(c.ttl.Seconds()),
	}

	keys, err := c.client.Keys(ctx, redisKeyPrefix+"*").Result()
	if err != nil {
		c.logger.Warn().Err(err).Msg("Cache stats failed")
		return stats
	}

	stats.Entries = len(keys)
	return stats
}
