package middleware

import (
	"log/slog"
	"strconv"

	deliverycontext "sahara/internal/delivery/context"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	"sahara/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	headerRateLimitRemaining = "X-RateLimit-Remaining"
	headerRetryAfter         = "Retry-After"
)

// RateLimitMiddlewareParams holds dependencies for RateLimitMiddleware, injected by Fx.
type RateLimitMiddlewareParams struct {
	fx.In

	Limiter service.RateLimiter
	Logger  *slog.Logger
}

// RateLimitMiddleware throttles credential endpoints per client IP.
type RateLimitMiddleware struct {
	limiter service.RateLimiter
	logger  *slog.Logger
}

func NewRateLimitMiddleware(params RateLimitMiddlewareParams) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		limiter: params.Limiter,
		logger:  params.Logger,
	}
}

// Limit counts requests under scope+client IP. Limiter failures let the request through.
func (m *RateLimitMiddleware) Limit(scope string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()

			result, err := m.limiter.Allow(ctx, scope+":"+c.RealIP())
			if err != nil {
				deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Rate limiter unavailable, allowing request",
					slog.String("scope", scope),
					slog.Any("error", err))

				return next(c)
			}

			if result.Remaining >= 0 {
				c.Response().Header().Set(headerRateLimitRemaining, strconv.Itoa(result.Remaining))
			}

			if !result.Allowed {
				c.Response().Header().Set(headerRetryAfter, strconv.Itoa(util.RetryAfterSeconds(result.RetryAfter)))

				return domainerrors.ErrRateLimited.WithDetails("retry in " + util.FormatDuration(result.RetryAfter))
			}

			return next(c)
		}
	}
}
