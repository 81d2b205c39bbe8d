// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrRecordNotFound is returned when no record matches the {id, owner} filter.
	// Absent and foreign records are deliberately indistinguishable.
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateKey is returned when a write violates a unique index.
	ErrDuplicateKey = errors.New("duplicate key")
)

// OwnedRepository is the shared contract for per-user resources. Every
// single-record operation matches on the id AND the owner in one filter, so
// callers cannot reach records that belong to someone else.
type OwnedRepository[E any, P any] interface {
	// Create persists a new record. Violations of a unique index return ErrDuplicateKey.
	Create(ctx context.Context, record *E) error

	// FindByOwner returns every record owned by ownerID in creation order.
	FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error)

	// FindOwned returns the record matching both id and ownerID.
	FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error)

	// UpdateOwned applies the patch atomically and returns the post-update record.
	UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch P) (*E, error)

	// DeleteOwned removes the record atomically and returns what was removed.
	DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error)
}
