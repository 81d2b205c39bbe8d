package impl

import (
	"context"
	"testing"

	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/service"
	mockSvc "sahara/internal/mocks/service"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type companionServiceFixtures struct {
	service usecase.CompanionUsecase
	chat    *mockSvc.MockChatService
	vision  *mockSvc.MockVisionService
}

func createTestCompanionService(t *testing.T) companionServiceFixtures {
	chat := mockSvc.NewMockChatService(t)
	vision := mockSvc.NewMockVisionService(t)

	return companionServiceFixtures{
		service: NewCompanionService(CompanionServiceParams{
			Chat:   chat,
			Vision: vision,
			Logger: newDiscardLogger(),
		}),
		chat:   chat,
		vision: vision,
	}
}

func TestCompanionService_Chat(t *testing.T) {
	ctx := context.Background()

	t.Run("trims prompt", func(t *testing.T) {
		fx := createTestCompanionService(t)
		fx.chat.EXPECT().Reply(ctx, "how are you?").Return("Doing well.", nil)

		reply, err := fx.service.Chat(ctx, uuid.New(), "  how are you?  ")
		require.NoError(t, err)
		assert.Equal(t, "Doing well.", reply)
	})

	t.Run("empty prompt", func(t *testing.T) {
		fx := createTestCompanionService(t)

		_, err := fx.service.Chat(ctx, uuid.New(), " ")
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("upstream failure passes through", func(t *testing.T) {
		fx := createTestCompanionService(t)
		fx.chat.EXPECT().Reply(ctx, "hi").Return("", domainerrors.ErrUpstreamFailed)

		_, err := fx.service.Chat(ctx, uuid.New(), "hi")
		assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
	})
}

func TestCompanionService_FallStatus(t *testing.T) {
	ctx := context.Background()
	fx := createTestCompanionService(t)

	fx.vision.EXPECT().FallStatus(ctx).Return(&service.FallStatus{FallDetected: true, FallConfirmed: true}, nil).Once()
	fx.vision.EXPECT().FallStatus(ctx).Return(nil, domainerrors.ErrCompanionUnavailable).Once()

	status, err := fx.service.FallStatus(ctx)
	require.NoError(t, err)
	assert.True(t, status.FallConfirmed)

	_, err = fx.service.FallStatus(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrCompanionUnavailable)
}

func TestCompanionService_VideoFeedURL(t *testing.T) {
	ctx := context.Background()

	fx := createTestCompanionService(t)
	fx.vision.EXPECT().VideoFeedURL().Return("http://camera:5001/video_feed")

	url, err := fx.service.VideoFeedURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, "http://camera:5001/video_feed", url)

	unconfigured := createTestCompanionService(t)
	unconfigured.vision.EXPECT().VideoFeedURL().Return("")

	_, err = unconfigured.service.VideoFeedURL(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrCompanionUnavailable)
}
