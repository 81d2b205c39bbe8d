package entity

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an emergency contact owned by exactly one user.
type Contact struct {
	ID           uuid.UUID
	OwnerID      uuid.UUID
	Name         string
	PhoneNumber  string // Unique across all users.
	Relationship string
	Primary      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ContactPatch carries a partial update. Nil fields are left untouched.
type ContactPatch struct {
	Name         *string
	PhoneNumber  *string
	Relationship *string
	Primary      *bool
	UpdatedAt    time.Time
}

// Apply copies the present fields of the patch onto the contact.
func (p ContactPatch) Apply(c *Contact) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.PhoneNumber != nil {
		c.PhoneNumber = *p.PhoneNumber
	}
	if p.Relationship != nil {
		c.Relationship = *p.Relationship
	}
	if p.Primary != nil {
		c.Primary = *p.Primary
	}
	if !p.UpdatedAt.IsZero() {
		c.UpdatedAt = p.UpdatedAt
	}
}
