// Package memory is an in-process implementation of the repositories. It backs
// the "memory" storage driver for local runs and the end-to-end tests, and it
// enforces the same unique keys and ownership filters as the MongoDB driver.
package memory

import (
	"sahara/internal/domain/entity"
	"sahara/internal/domain/repository"

	"github.com/google/uuid"
)

// Store groups the in-memory tables.
type Store struct {
	users     *userTable
	contacts  *ownedTable[entity.Contact, entity.ContactPatch]
	reminders *ownedTable[entity.Reminder, entity.ReminderPatch]
}

func NewStore() *Store {
	return &Store{
		users: newUserTable(),
		contacts: &ownedTable[entity.Contact, entity.ContactPatch]{
			id:     func(c *entity.Contact) uuid.UUID { return c.ID },
			owner:  func(c *entity.Contact) uuid.UUID { return c.OwnerID },
			unique: func(c *entity.Contact) string { return c.PhoneNumber },
			apply:  func(p entity.ContactPatch, c *entity.Contact) { p.Apply(c) },
		},
		reminders: &ownedTable[entity.Reminder, entity.ReminderPatch]{
			id:    func(r *entity.Reminder) uuid.UUID { return r.ID },
			owner: func(r *entity.Reminder) uuid.UUID { return r.OwnerID },
			apply: func(p entity.ReminderPatch, r *entity.Reminder) { p.Apply(r) },
		},
	}
}

func (s *Store) Users() repository.UserRepository {
	return s.users
}

func (s *Store) Contacts() repository.ContactRepository {
	return s.contacts
}

func (s *Store) Reminders() repository.ReminderRepository {
	return s.reminders
}
