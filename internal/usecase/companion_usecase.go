package usecase

import (
	"context"

	"sahara/internal/domain/service"

	"github.com/google/uuid"
)

// CompanionUsecase fronts the chat model and the camera fall detector.
type CompanionUsecase interface {
	Chat(ctx context.Context, userID uuid.UUID, prompt string) (string, error)
	FallStatus(ctx context.Context) (*service.FallStatus, error)
	VideoFeedURL(ctx context.Context) (string, error)
}
