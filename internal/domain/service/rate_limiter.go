package service

import (
	"context"
	"time"
)

// RateLimitResult reports the outcome of a single hit against a limiter key.
type RateLimitResult struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// RateLimiter counts attempts per key inside a fixed window.
type RateLimiter interface {
	Allow(ctx context.Context, key string) (*RateLimitResult, error)
}
