package ports

import "context"

// RateLimiter guards abuse-prone endpoints (login, forgot-password).
// Allow reports whether the caller identified by key may proceed.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}
