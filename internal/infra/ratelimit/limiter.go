package ratelimit

import (
	"context"
	"time"

	"sahara/config"
	"sahara/internal/domain/service"
	"sahara/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	keyPrefix          = "sahara:ratelimit:"
	defaultMaxAttempts = 10
	defaultWindow      = time.Minute
)

// LimiterParams defines the parameters required for the login limiter
type LimiterParams struct {
	fx.In

	Client *redis.Client `optional:"true"`
	Config *config.Config
}

// NewLoginRateLimiter returns a Redis limiter, or a limiter that allows
// everything when Redis or the login limit is not configured.
func NewLoginRateLimiter(params LimiterParams) service.RateLimiter {
	if params.Client == nil || params.Config.Auth == nil || params.Config.Auth.LoginRateLimit == nil {
		return noopLimiter{}
	}

	cfg := params.Config.Auth.LoginRateLimit

	return NewRedisLimiter(params.Client, cfg.MaxAttempts, cfg.Window)
}

// redisLimiter is a fixed-window counter: INCR on the window key, with the
// expiry set by whichever request opens the window.
type redisLimiter struct {
	client      *redis.Client
	maxAttempts int
	window      time.Duration
}

func NewRedisLimiter(client *redis.Client, maxAttempts int, window time.Duration) service.RateLimiter {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if window <= 0 {
		window = defaultWindow
	}

	return &redisLimiter{
		client:      client,
		maxAttempts: maxAttempts,
		window:      window,
	}
}

func (l *redisLimiter) Allow(ctx context.Context, key string) (*service.RateLimitResult, error) {
	redisKey := keyPrefix + key

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pttl := pipe.PTTL(ctx, redisKey)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limit pipeline")
	}

	ttl := pttl.Val()
	if ttl < 0 {
		if err := l.client.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return nil, errors.Wrap(err, "rate limit expire")
		}
		ttl = l.window
	}

	count := int(incr.Val())

	return &service.RateLimitResult{
		Allowed:    count <= l.maxAttempts,
		Remaining:  max(0, l.maxAttempts-count),
		RetryAfter: ttl,
	}, nil
}

type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (*service.RateLimitResult, error) {
	return &service.RateLimitResult{Allowed: true, Remaining: -1}, nil
}
