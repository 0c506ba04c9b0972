package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// RedisLimiter is a sliding-window limiter backed by Redis sorted sets
type RedisLimiter struct {
	redis     *redis.Client
	keyPrefix string
	now       func() time.Time
}

func NewRedisLimiter(client *redis.Client, keyPrefix string) *RedisLimiter {
	return &RedisLimiter{
		redis:     client,
		keyPrefix: keyPrefix,
		now:       time.Now,
	}
}

func (l *RedisLimiter) formatKey(key string) string {
	return fmt.Sprintf("%s:ratelimit:%s", l.keyPrefix, key)
}

// Allow records the request and reports whether it fits in the window. Redis
// failures let the request through.
func (l *RedisLimiter) Allow(ctx context.Context, key string, rate Rate) (bool, Info) {
	now := l.now()
	windowKey := l.formatKey(key)
	windowStart := now.Add(-rate.Window).UnixNano()

	pipe := l.redis.TxPipeline()
	pipe.ZRemRangeByScore(ctx, windowKey, "0", strconv.FormatInt(windowStart, 10))
	card := pipe.ZCard(ctx, windowKey)
	pipe.ZAdd(ctx, windowKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	pipe.Expire(ctx, windowKey, rate.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		logrus.WithError(err).WithField("key", key).Warn("rate limiter unavailable, allowing request")
		return true, Info{Limit: rate.Requests, Remaining: rate.Requests, Reset: now.Add(rate.Window)}
	}

	return info(rate, int(card.Val())+1, now)
}

func (l *RedisLimiter) Reset(ctx context.Context, key string) error {
	return l.redis.Del(ctx, l.formatKey(key)).Err()
}
