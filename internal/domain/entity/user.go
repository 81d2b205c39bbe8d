// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder: the senior or the caregiver signing in for them.
type User struct {
	ID           uuid.UUID   // System-assigned identifier, also the token subject.
	FullName     string      // Display name used in the login greeting.
	Email        string      // Login identifier, unique across all users.
	PasswordHash string      // bcrypt hash. Never serialized, never logged.
	ContactIDs   []uuid.UUID // Advisory list of contacts created by this user. Not an access-control input.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PublicUser is the projection of a User that may leave the service.
type PublicUser struct {
	ID       uuid.UUID
	FullName string
	Email    string
}

// Public strips the credential material from the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}
}
