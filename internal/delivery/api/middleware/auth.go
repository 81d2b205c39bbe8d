package middleware

import (
	"strings"

	deliverycontext "sahara/internal/delivery/context"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const headerAuthorization = "Authorization"

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// AuthMiddleware resolves the caller from the Authorization header.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{authUC: params.AuthUC}
}

// Authenticate rejects the request with 401 unless the header carries a valid
// token for an existing user. The header holds the raw token; a "Bearer "
// prefix is accepted as well.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := extractToken(c.Request().Header.Get(headerAuthorization))
		if token == "" {
			return domainerrors.ErrMissingToken
		}

		user, err := m.authUC.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUser(c, user)

		return next(c)
	}
}

func extractToken(header string) string {
	token := strings.TrimSpace(header)
	if len(token) > len("Bearer ") && strings.EqualFold(token[:len("Bearer ")], "Bearer ") {
		token = strings.TrimSpace(token[len("Bearer "):])
	}

	return token
}

// GetUserID returns the id of the caller set by Authenticate.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	user, ok := deliverycontext.GetUser(c)
	if !ok {
		return uuid.Nil, false
	}

	return user.ID, true
}
