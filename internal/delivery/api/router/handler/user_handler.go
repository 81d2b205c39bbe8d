// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"sahara/internal/delivery/api/response"
	"sahara/internal/delivery/api/validator"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const tokenCookieName = "token"

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// UserHandler holds dependencies for account and session handlers.
type UserHandler struct {
	authUC usecase.AuthUsecase
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		authUC: params.AuthUC,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	FullName string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Message string            `json:"message"`
	User    response.UserView `json:"user"`
	Token   string            `json:"token"`
	Success bool              `json:"success"`
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("something is missing").WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("something is missing").WithDetails(validator.Describe(err))
	}

	if _, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
	}); err != nil {
		return err
	}

	return response.Message(c, http.StatusOK, "User created successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("something is missing").WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("something is missing").WithDetails(validator.Describe(err))
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    output.Token,
		Path:     "/",
		MaxAge:   int(output.ExpiresIn.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return response.Success(c, http.StatusOK, LoginResponse{
		Message: "Welcome back " + output.User.FullName,
		User:    response.NewUserView(output.User),
		Token:   output.Token,
		Success: true,
	})
}

// Logout expires the token cookie. It needs no token: sessions are not
// tracked server-side, so a copy held elsewhere stays valid until it expires.
func (h *UserHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		return err
	}

	c.SetCookie(&http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})

	return response.Message(c, http.StatusOK, "Logged out successfully")
}
