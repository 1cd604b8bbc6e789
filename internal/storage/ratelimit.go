package storage

import (
	"context"
	"fmt"
	"time"
)

// Counter is the part of the Redis client the limiter needs.
type Counter interface {
	Incr(ctx context.Context, key string) (int64, error)
	Expire(ctx context.Context, key string, expiration time.Duration) (bool, error)
}

// RateLimiter counts requests per subject in fixed windows.
type RateLimiter struct {
	counter Counter
	limit   int64
	window  time.Duration
}

func NewRateLimiter(counter Counter, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{counter: counter, limit: limit, window: window}
}

// Exceeded increments the subject's counter and reports whether the limit
// of the current window has been passed.
func (l *RateLimiter) Exceeded(ctx context.Context, subject, action string) (bool, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", subject, action)

	count, err := l.counter.Incr(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to increment rate limit counter: %w", err)
	}

	// First request opens the window
	if count == 1 {
		if _, err := l.counter.Expire(ctx, key, l.window); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count > l.limit, nil
}
