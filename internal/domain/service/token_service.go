package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for session tokens.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating session tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs a session token for the user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature, algorithm and expiry and returns the subject.
	// An empty token yields ErrMissingToken, every other failure ErrInvalidToken.
	ValidateToken(tokenString string) (uuid.UUID, error)

	// TokenTTL returns the configured session lifetime.
	TokenTTL() time.Duration
}
