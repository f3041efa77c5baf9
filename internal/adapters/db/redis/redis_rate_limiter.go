package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter implements a per-key sliding window over a redis sorted
// set: one member per request, scored by its timestamp, trimmed to the
// window on every check.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, limit: limit, window: window}
}

func (r *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	windowStart := now.Add(-r.window)
	member := strconv.FormatInt(now.UnixNano(), 10)
	redisKey := "rl:" + key

	pipe := r.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart.UnixNano(), 10))
	count := pipe.ZCard(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if count.Val() >= int64(r.limit) {
		return false, nil
	}

	pipe = r.client.TxPipeline()
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(now.UnixNano()), Member: member})
	pipe.Expire(ctx, redisKey, r.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}
	return true, nil
}
