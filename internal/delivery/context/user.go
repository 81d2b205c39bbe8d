package context

import (
	"context"

	"sahara/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// KeyUser is the key for storing the authenticated caller.
const KeyUser ContextKey = "user"

// SetUser stores the authenticated caller on both the echo context and the request context.
func SetUser(c echo.Context, user *entity.User) {
	c.Set(string(KeyUser), user)
	c.SetRequest(c.Request().WithContext(WithUser(c.Request().Context(), user)))
}

// GetUser returns the caller resolved by the auth middleware.
func GetUser(c echo.Context) (*entity.User, bool) {
	user, ok := c.Get(string(KeyUser)).(*entity.User)

	return user, ok && user != nil
}

// WithUser returns a new context carrying the caller.
func WithUser(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, KeyUser, user)
}
