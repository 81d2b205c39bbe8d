// Package ratelimit provides the Redis-backed fixed-window limiter used to throttle credential endpoints.
package ratelimit

import (
	"context"
	"log/slog"

	"sahara/config"
	"sahara/internal/domain/lifecycle"
	"sahara/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// ClientParams defines the parameters required for the Redis client
type ClientParams struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewRedisClient returns nil when Redis is not configured, which disables throttling.
func NewRedisClient(params ClientParams) (*redis.Client, error) {
	cfg := params.Config.Redis
	if cfg == nil || cfg.URI == "" {
		params.Logger.Info("Redis not configured, login throttling disabled")

		return nil, nil
	}

	opt, err := redis.ParseURL(cfg.URI)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse redis uri")
	}

	if cfg.PoolSize > 0 {
		opt.PoolSize = cfg.PoolSize
	}
	if cfg.MinIdleConns > 0 {
		opt.MinIdleConns = cfg.MinIdleConns
	}
	if cfg.DialTimeout > 0 {
		opt.DialTimeout = cfg.DialTimeout
	}
	if cfg.ReadTimeout > 0 {
		opt.ReadTimeout = cfg.ReadTimeout
	}
	if cfg.WriteTimeout > 0 {
		opt.WriteTimeout = cfg.WriteTimeout
	}

	client := redis.NewClient(opt)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// Throttling fails open, so an unreachable Redis is logged rather than fatal.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.Warn("Redis ping failed", slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}
