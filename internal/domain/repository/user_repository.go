package repository

import (
	"context"
	"errors"

	"sahara/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. A taken email returns ErrDuplicateKey.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// AddContactRef appends a contact id to the user's advisory contact list.
	AddContactRef(ctx context.Context, userID, contactID uuid.UUID) error

	// RemoveContactRef drops a contact id from the user's advisory contact list.
	RemoveContactRef(ctx context.Context, userID, contactID uuid.UUID) error
}
