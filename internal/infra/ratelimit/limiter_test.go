package ratelimit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"sahara/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestNewLoginRateLimiter_FallsBackToNoop(t *testing.T) {
	limiter := NewLoginRateLimiter(LimiterParams{Config: &config.Config{}})

	result, err := limiter.Allow(context.Background(), "login:127.0.0.1")
	require.NoError(t, err)
	assert.True(t, result.Allowed)
}

func TestNewLoginRateLimiter_UsesRedisWhenConfigured(t *testing.T) {
	client := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewLoginRateLimiter(LimiterParams{
		Client: client,
		Config: &config.Config{Auth: &config.AuthConfig{
			LoginRateLimit: &config.RateLimitConfig{MaxAttempts: 3, Window: time.Minute},
		}},
	})

	redisLimiter, ok := limiter.(*redisLimiter)
	require.True(t, ok)
	assert.Equal(t, 3, redisLimiter.maxAttempts)
	assert.Equal(t, time.Minute, redisLimiter.window)
}

func TestNewRedisLimiter_Defaults(t *testing.T) {
	limiter := NewRedisLimiter(redis.NewClient(&redis.Options{}), 0, 0).(*redisLimiter)

	assert.Equal(t, defaultMaxAttempts, limiter.maxAttempts)
	assert.Equal(t, defaultWindow, limiter.window)
}

func TestRedisLimiter_ReturnsErrorWhenRedisIsDown(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	_, err := NewRedisLimiter(client, 3, time.Minute).Allow(context.Background(), "login:127.0.0.1")
	assert.Error(t, err)
}

func TestNewRedisClient_NotConfigured(t *testing.T) {
	client, err := NewRedisClient(ClientParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)
	assert.Nil(t, client)
}

func TestNewRedisClient_InvalidURI(t *testing.T) {
	_, err := NewRedisClient(ClientParams{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    &config.Config{Redis: &config.RedisConfig{URI: "not a uri"}},
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}
