package impl

import (
	"context"
	"testing"
	"time"

	"sahara/internal/domain/entity"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/repository"
	"sahara/internal/errors"
	mockRepo "sahara/internal/mocks/repository"
	mockSvc "sahara/internal/mocks/service"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	svc := NewAuthService(AuthServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})
	svc.(*authService).now = fixedClock

	return authServiceFixtures{
		service:      svc,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func existingUser() *entity.User {
	return &entity.User{
		ID:           uuid.New(),
		FullName:     "Asha",
		Email:        "asha@x.com",
		PasswordHash: "$2a$10$stored",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("$2a$10$hashed", nil)

	var stored *entity.User
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) { stored = user }).
		Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: " Asha ",
		Email:    "asha@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	require.NotNil(t, stored)
	assert.Equal(t, "$2a$10$hashed", stored.PasswordHash)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.Equal(t, "Asha", stored.FullName)
	assert.Equal(t, fixedNow, stored.CreatedAt)
	assert.Equal(t, fixedNow, stored.UpdatedAt)
	assert.NotEqual(t, uuid.Nil, stored.ID)

	assert.Equal(t, entity.PublicUser{ID: stored.ID, FullName: "Asha", Email: "asha@x.com"}, *user)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	inputs := []*usecase.RegisterInput{
		{Email: "asha@x.com", Password: "secret1"},
		{FullName: "Asha", Password: "secret1"},
		{FullName: "Asha", Email: "asha@x.com"},
		{FullName: "   ", Email: "asha@x.com", Password: "secret1"},
	}

	for _, input := range inputs {
		fx := createTestAuthService(t)

		_, err := fx.service.Register(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	}
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	fx := createTestAuthService(t)

	weak := domainerrors.ErrPasswordStrength.WithDetails("password must be at least 8 characters")
	fx.hasher.EXPECT().ValidatePasswordStrength("short").Return(weak)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{
		FullName: "Asha", Email: "asha@x.com", Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPasswordStrength)
}

func TestAuthService_Register_DuplicateEmailFromLookup(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@x.com").Return(existingUser(), nil)

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Asha", Email: "asha@x.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Register_DuplicateEmailFromUniqueIndex(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@x.com").Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash("secret1").Return("$2a$10$hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(errors.Wrap(repository.ErrDuplicateKey, "insert user"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Asha", Email: "asha@x.com", Password: "secret1",
	})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@x.com").Return(nil, errors.New("connection reset"))

	_, err := fx.service.Register(ctx, &usecase.RegisterInput{
		FullName: "Asha", Email: "asha@x.com", Password: "secret1",
	})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}

func TestAuthService_Login_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	user := existingUser()

	fx.userRepo.EXPECT().FindByEmail(ctx, "asha@x.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret1", user.PasswordHash).Return(true)
	fx.tokenService.EXPECT().GenerateToken(user.ID).Return("signed.jwt.token", nil)
	fx.tokenService.EXPECT().TokenTTL().Return(24 * time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "asha@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", out.Token)
	assert.Equal(t, 24*time.Hour, out.ExpiresIn)
	assert.Equal(t, user.Public(), out.User)
}

func TestAuthService_Login_FailuresShareOneError(t *testing.T) {
	ctx := context.Background()

	wrongPassword := createTestAuthService(t)
	user := existingUser()
	wrongPassword.userRepo.EXPECT().FindByEmail(ctx, "asha@x.com").Return(user, nil)
	wrongPassword.hasher.EXPECT().Check("nope", user.PasswordHash).Return(false)

	_, errWrong := wrongPassword.service.Login(ctx, &usecase.LoginInput{Email: "asha@x.com", Password: "nope"})

	unknownEmail := createTestAuthService(t)
	unknownEmail.userRepo.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, repository.ErrUserNotFound)
	unknownEmail.hasher.EXPECT().Hash(timingPassword).Return("$2a$10$timing", nil).Once()
	unknownEmail.hasher.EXPECT().Check("nope", "$2a$10$timing").Return(false).Twice()

	_, errUnknown := unknownEmail.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "nope"})

	// The timing hash is computed once and reused.
	_, _ = unknownEmail.service.Login(ctx, &usecase.LoginInput{Email: "ghost@x.com", Password: "nope"})

	require.ErrorIs(t, errWrong, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, errUnknown, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	fx := createTestAuthService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "asha@x.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves user without hash", func(t *testing.T) {
		fx := createTestAuthService(t)
		user := existingUser()

		fx.tokenService.EXPECT().ValidateToken("tok").Return(user.ID, nil)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)

		got, err := fx.service.Authenticate(ctx, "tok")
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Empty(t, got.PasswordHash)
	})

	t.Run("invalid token", func(t *testing.T) {
		fx := createTestAuthService(t)

		fx.tokenService.EXPECT().ValidateToken("bad").Return(uuid.Nil, domainerrors.ErrInvalidToken)

		_, err := fx.service.Authenticate(ctx, "bad")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
	})

	t.Run("user gone", func(t *testing.T) {
		fx := createTestAuthService(t)
		userID := uuid.New()

		fx.tokenService.EXPECT().ValidateToken("tok").Return(userID, nil)
		fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Authenticate(ctx, "tok")
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	fx := createTestAuthService(t)
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("tok").Return(userID, nil)
	fx.tokenService.EXPECT().ValidateToken("").Return(uuid.Nil, domainerrors.ErrMissingToken)

	got, err := fx.service.VerifyToken(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	_, err = fx.service.VerifyToken(context.Background(), "")
	assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
}

func TestAuthService_Logout(t *testing.T) {
	fx := createTestAuthService(t)

	assert.NoError(t, fx.service.Logout(context.Background()))
}
