package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	defaultLimit  = 10
	defaultWindow = time.Minute
)

// RateLimiter is a fixed-window counter backed by Redis.
// Key format: ratelimit:<scope>:<key>:<window_start_unix>
type RateLimiter struct {
	client *redis.Client
	scope  string
	limit  int
	window time.Duration
}

// NewRateLimiter creates a limiter allowing limit calls per window for each
// key within the given scope. Non-positive arguments fall back to defaults.
func NewRateLimiter(client *redis.Client, scope string, limit int, window time.Duration) *RateLimiter {
	if limit <= 0 {
		limit = defaultLimit
	}
	if window <= 0 {
		window = defaultWindow
	}
	return &RateLimiter{client: client, scope: scope, limit: limit, window: window}
}

// Allow increments the caller's counter for the current window and reports
// whether it is still within the limit.
func (l *RateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	k := l.key(key, time.Now())

	n, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit incr: %w", err)
	}
	if n == 1 {
		// First hit in this window; bound the key's lifetime.
		if err := l.client.Expire(ctx, k, l.window).Err(); err != nil {
			return false, fmt.Errorf("rate limit expire: %w", err)
		}
	}
	return n <= int64(l.limit), nil
}

func (l *RateLimiter) key(key string, now time.Time) string {
	windowStart := now.Unix() - now.Unix()%int64(l.window.Seconds())
	return fmt.Sprintf("ratelimit:%s:%s:%d", l.scope, key, windowStart)
}
