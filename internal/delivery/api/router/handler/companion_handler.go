package handler

import (
	"net/http"

	"sahara/internal/delivery/api/middleware"
	"sahara/internal/delivery/api/response"
	"sahara/internal/delivery/api/validator"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CompanionHandlerParams holds dependencies for CompanionHandler, injected by Fx.
type CompanionHandlerParams struct {
	fx.In

	CompanionUC usecase.CompanionUsecase
}

// CompanionHandler exposes the chat model and the camera service to signed-in users.
type CompanionHandler struct {
	companionUC usecase.CompanionUsecase
}

func NewCompanionHandler(params CompanionHandlerParams) *CompanionHandler {
	return &CompanionHandler{
		companionUC: params.CompanionUC,
	}
}

// ChatRequest represents the request body for a chat turn
type ChatRequest struct {
	Prompt string `json:"prompt" validate:"required,notblank"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

func (h *CompanionHandler) Chat(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrMissingToken
	}

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Prompt is required.").WithDetails("malformed request body")
	}

	if err := c.Validate(&req); err != nil {
		return domainerrors.ErrValidationFailed.WithMessage("Prompt is required.").WithDetails(validator.Describe(err))
	}

	reply, err := h.companionUC.Chat(c.Request().Context(), userID, req.Prompt)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, ChatResponse{Reply: reply})
}

func (h *CompanionHandler) FallStatus(c echo.Context) error {
	status, err := h.companionUC.FallStatus(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, status)
}

// VideoFeed redirects to the camera's MJPEG stream rather than proxying it.
func (h *CompanionHandler) VideoFeed(c echo.Context) error {
	url, err := h.companionUC.VideoFeedURL(c.Request().Context())
	if err != nil {
		return err
	}

	return c.Redirect(http.StatusTemporaryRedirect, url)
}
