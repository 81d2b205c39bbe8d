package usecase

import (
	"context"

	"sahara/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateContactInput defines the data required to create an emergency contact.
type CreateContactInput struct {
	Name         string
	PhoneNumber  string
	Relationship string
	Primary      bool
}

// UpdateContactInput is a partial update. Nil fields are left untouched and
// present string fields must be non-empty.
type UpdateContactInput struct {
	Name         *string
	PhoneNumber  *string
	Relationship *string
	Primary      *bool
}

// ContactUsecase defines the emergency contact operations. Every call is
// scoped to ownerID; records owned by someone else behave as if absent.
type ContactUsecase interface {
	CreateContact(ctx context.Context, ownerID uuid.UUID, input *CreateContactInput) (*entity.Contact, error)
	ListContacts(ctx context.Context, ownerID uuid.UUID) ([]*entity.Contact, error)
	GetContact(ctx context.Context, ownerID, contactID uuid.UUID) (*entity.Contact, error)
	UpdateContact(ctx context.Context, ownerID, contactID uuid.UUID, input *UpdateContactInput) (*entity.Contact, error)
	DeleteContact(ctx context.Context, ownerID, contactID uuid.UUID) error
	// ContactCard renders the contact as a PNG QR code.
	ContactCard(ctx context.Context, ownerID, contactID uuid.UUID) ([]byte, error)
}
