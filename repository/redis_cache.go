package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// modelCacheTTL bounds how long a fitted model lives in Redis; a stale entry
// is simply refit from source.
const modelCacheTTL = 24 * time.Hour

// RedisCache is a Redis-backed CacheRepository used to share fitted models
// across processes.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(addr string) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr: addr,
		}),
	}
}

func (r *RedisCache) Get(ctx context.Context, key string) (string, bool) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(ctx context.Context, key string, value string) error {
	return r.client.Set(ctx, key, value, modelCacheTTL).Err()
}
