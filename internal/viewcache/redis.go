package viewcache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type RedisCache struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewRedisCache(rdb *redis.Client, log *zap.Logger) *RedisCache {
	return &RedisCache{rdb: rdb, log: log}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.log.Warn("view cache get", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return val, true
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.rdb.Set(ctx, key, value, ttl).Err(); err != nil {
		c.log.Warn("view cache set", zap.String("key", key), zap.Error(err))
	}
}

func (c *RedisCache) Invalidate(ctx context.Context, key string) {
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.Warn("view cache invalidate", zap.String("key", key), zap.Error(err))
	}
}
