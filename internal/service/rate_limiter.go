package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// fixedWindowScript increments the window counter and starts its expiry on
// the first hit, in one round trip.
var fixedWindowScript = redis.NewScript(`
	local current = redis.call('INCR', KEYS[1])
	if current == 1 then
		redis.call('PEXPIRE', KEYS[1], ARGV[1])
	end
	return current
`)

const RedisRateLimitKeyPrefix = "ratelimit:chat"

// RateLimiter is a fixed-window request limiter backed by Redis, shared by
// every instance of the service.
type RateLimiter struct {
	redisClient *redis.Client
	limit       int
	window      time.Duration
	prefix      string
}

func NewRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = 60
	}
	if window <= 0 {
		window = time.Minute
	}
	return &RateLimiter{
		redisClient: redisClient,
		limit:       limit,
		window:      window,
		prefix:      RedisRateLimitKeyPrefix,
	}
}

// Allow records a hit for clientKey and reports whether it is within the
// limit of the current window.
func (l *RateLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	windowStart := time.Now().UnixNano() / int64(l.window)
	key := fmt.Sprintf("%s:%s:%d", l.prefix, strings.TrimSpace(clientKey), windowStart)

	count, err := fixedWindowScript.Run(ctx, l.redisClient, []string{key}, l.window.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit script for %s: %w", clientKey, err)
	}

	return count <= l.limit, nil
}
