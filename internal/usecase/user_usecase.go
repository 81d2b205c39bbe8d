// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"sahara/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	FullName string
	Email    string
	Password string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the session token and the public view of the user.
type LoginOutput struct {
	User      entity.PublicUser
	Token     string
	ExpiresIn time.Duration
}

// AuthUsecase defines the interface for credential and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account. The plaintext password is never stored.
	Register(ctx context.Context, input *RegisterInput) (*entity.PublicUser, error)
	// Login returns ErrInvalidCredentials for both an unknown email and a wrong password.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	// VerifyToken returns the token subject.
	VerifyToken(ctx context.Context, token string) (uuid.UUID, error)
	// Authenticate verifies the token and resolves the caller.
	Authenticate(ctx context.Context, token string) (*entity.User, error)
	// Logout is stateless: issued tokens stay valid until they expire.
	Logout(ctx context.Context) error
}
