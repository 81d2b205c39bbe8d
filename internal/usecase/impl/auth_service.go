// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	deliverycontext "sahara/internal/delivery/context"
	"sahara/internal/domain/entity"
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/repository"
	"sahara/internal/domain/service"
	"sahara/internal/errors"
	"sahara/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// timingPassword is hashed once and compared against when the email is
// unknown, so both login failure paths pay for a bcrypt comparison.
const timingPassword = "sahara-login-timing-equalizer"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
	now          func() time.Time

	dummyHashOnce sync.Once
	dummyHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
		now:          systemClock,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the input, rejects taken emails and stores the bcrypt hash.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.PublicUser, error) {
	fullName := strings.TrimSpace(input.FullName)
	email := strings.TrimSpace(input.Email)
	if fullName == "" || email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("something is missing")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", email))

		return nil, err
	}

	_, err := srv.userRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		srv.log(ctx).Warn("Registration with existing email", slog.String("email", email))

		return nil, domainerrors.ErrDuplicateEmail
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by email")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	now := srv.now()
	user := &entity.User{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hashedPassword,
		ContactIDs:   []uuid.UUID{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can pass the lookup above; the unique index settles it.
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, domainerrors.ErrDuplicateEmail
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))

	public := user.Public()

	return &public, nil
}

// Login checks the password and mints a session token.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" || input.Password == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("something is missing")
	}

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by email")
	}

	var hash string
	if user != nil {
		hash = user.PasswordHash
	} else {
		hash = srv.timingHash()
	}

	// The comparison runs before branching so an unknown email costs the same as a wrong password.
	passwordOK := srv.hasher.Check(input.Password, hash)
	if user == nil || !passwordOK {
		srv.log(ctx).Warn("Login failed", slog.String("email", email))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.GenerateToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token", slog.String("userID", user.ID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", user.ID.String()))

	return &usecase.LoginOutput{
		User:      user.Public(),
		Token:     token,
		ExpiresIn: srv.tokenService.TokenTTL(),
	}, nil
}

func (srv *authService) VerifyToken(_ context.Context, token string) (uuid.UUID, error) {
	return srv.tokenService.ValidateToken(token)
}

// Authenticate resolves the token subject to a live user record.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, err := srv.tokenService.ValidateToken(token)
	if err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find user by id")
	}

	user.PasswordHash = ""

	return user, nil
}

// Logout has no server-side state to clear; it only records the request.
func (srv *authService) Logout(ctx context.Context) error {
	srv.log(ctx).Info("Logout requested")

	return nil
}

func (srv *authService) timingHash() string {
	srv.dummyHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			srv.logger.Error("Failed to prepare timing hash", slog.Any("error", err))

			return
		}
		srv.dummyHash = hash
	})

	return srv.dummyHash
}

// systemClock truncates to milliseconds, the precision BSON dates keep.
func systemClock() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
