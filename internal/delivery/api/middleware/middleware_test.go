package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sahara/internal/domain/entity"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	mockSvc "sahara/internal/mocks/service"
	mockUC "sahara/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho wires the centralized error handler so middleware errors render like production.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	user := &entity.User{ID: uuid.New(), FullName: "Asha", Email: "asha@x.com"}

	tests := []struct {
		name       string
		header     string
		setup      func(uc *mockUC.MockAuthUsecase)
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "missing header",
			header:     "",
			setup:      func(*mockUC.MockAuthUsecase) {},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "No token provided, authorization denied.",
		},
		{
			name:   "invalid token",
			header: "garbage",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "garbage").Return(nil, domainerrors.ErrInvalidToken.WithDetails("token is malformed"))
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "Invalid token, authorization denied.",
		},
		{
			name:   "user gone",
			header: "tok",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "tok").Return(nil, domainerrors.ErrUserNotFound)
			},
			wantStatus: http.StatusUnauthorized,
			wantMsg:    "User not found, authorization denied.",
		},
		{
			name:   "raw token",
			header: "tok",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "bearer prefix tolerated",
			header: "Bearer tok",
			setup: func(uc *mockUC.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "tok").Return(user, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUC.NewMockAuthUsecase(t)
			tt.setup(uc)

			e := newTestEcho()
			mw := NewAuthMiddleware(AuthMiddlewareParams{AuthUC: uc})
			e.GET("/me", func(c echo.Context) error {
				id, ok := GetUserID(c)
				require.True(t, ok)

				return c.String(http.StatusOK, id.String())
			}, mw.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, user.ID.String(), rec.Body.String())

				return
			}

			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMsg, body["message"])
			assert.Equal(t, false, body["success"])
			assert.NotContains(t, body, "error")
		})
	}
}

func TestExtractToken(t *testing.T) {
	assert.Equal(t, "", extractToken(""))
	assert.Equal(t, "abc", extractToken("abc"))
	assert.Equal(t, "abc", extractToken("Bearer abc"))
	assert.Equal(t, "abc", extractToken("bearer  abc "))
	assert.Equal(t, "Bearer", extractToken("Bearer"))
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
		wantDetail bool
	}{
		{
			name:       "validation error with detail",
			err:        domainerrors.ErrValidationFailed.WithDetails("contactName: required"),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "All fields are required.",
			wantDetail: true,
		},
		{
			name:       "database error hides detail",
			err:        domainerrors.NewDatabaseExecuteError(assert.AnError, "insert contact"),
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Server error.",
		},
		{
			name:       "echo http error",
			err:        echo.NewHTTPError(http.StatusRequestEntityTooLarge, "Request Entity Too Large"),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantMsg:    "Request Entity Too Large",
		},
		{
			name:       "unknown route",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    "Resource not found.",
		},
		{
			name:       "unknown error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Server error.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			e.HTTPErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decodeBody(t, rec)
			assert.Equal(t, tt.wantMsg, body["message"])
			_, hasDetail := body["error"]
			assert.Equal(t, tt.wantDetail, hasDetail)
		})
	}
}

func TestRateLimitMiddleware_Limit(t *testing.T) {
	serve := func(limiter service.RateLimiter) *httptest.ResponseRecorder {
		e := newTestEcho()
		mw := NewRateLimitMiddleware(RateLimitMiddlewareParams{Limiter: limiter, Logger: discardLogger()})
		e.POST("/login", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, mw.Limit("login"))

		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = "203.0.113.7:5000"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	t.Run("allowed", func(t *testing.T) {
		limiter := mockSvc.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "login:203.0.113.7").
			Return(&service.RateLimitResult{Allowed: true, Remaining: 4}, nil)

		rec := serve(limiter)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
	})

	t.Run("blocked", func(t *testing.T) {
		limiter := mockSvc.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "login:203.0.113.7").
			Return(&service.RateLimitResult{Allowed: false, Remaining: 0, RetryAfter: 42 * time.Second}, nil)

		rec := serve(limiter)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Equal(t, "42", rec.Header().Get("Retry-After"))
		assert.Equal(t, "retry in 42s", decodeBody(t, rec)["error"])
	})

	t.Run("fails open", func(t *testing.T) {
		limiter := mockSvc.NewMockRateLimiter(t)
		limiter.EXPECT().Allow(mock.Anything, "login:203.0.113.7").Return(nil, assert.AnError)

		rec := serve(limiter)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
