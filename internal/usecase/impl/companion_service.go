package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "sahara/internal/delivery/context"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// companionService implements the CompanionUsecase interface.
type companionService struct {
	chat   service.ChatService
	vision service.VisionService
	logger *slog.Logger
}

// CompanionServiceParams holds dependencies for CompanionService, injected by Fx.
type CompanionServiceParams struct {
	fx.In

	Chat   service.ChatService
	Vision service.VisionService
	Logger *slog.Logger
}

func NewCompanionService(params CompanionServiceParams) usecase.CompanionUsecase {
	return &companionService{
		chat:   params.Chat,
		vision: params.Vision,
		logger: params.Logger,
	}
}

func (srv *companionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *companionService) Chat(ctx context.Context, userID uuid.UUID, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", domainerrors.ErrValidationFailed.WithMessage("Prompt is required.")
	}

	reply, err := srv.chat.Reply(ctx, prompt)
	if err != nil {
		// Prompts can carry health details, so only the size is logged.
		srv.log(ctx).Warn("Chat reply failed",
			slog.String("userID", userID.String()),
			slog.Int("promptLength", len(prompt)),
			slog.Any("error", err))

		return "", err
	}

	return reply, nil
}

func (srv *companionService) FallStatus(ctx context.Context) (*service.FallStatus, error) {
	status, err := srv.vision.FallStatus(ctx)
	if err != nil {
		srv.log(ctx).Warn("Fall status unavailable", slog.Any("error", err))

		return nil, err
	}

	if status.FallConfirmed {
		srv.log(ctx).Warn("Camera reports a confirmed fall")
	}

	return status, nil
}

func (srv *companionService) VideoFeedURL(_ context.Context) (string, error) {
	url := srv.vision.VideoFeedURL()
	if url == "" {
		return "", domainerrors.ErrCompanionUnavailable.WithDetails("camera service is not configured")
	}

	return url, nil
}
