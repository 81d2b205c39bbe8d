package repository

import "sahara/internal/domain/entity"

// ContactRepository stores emergency contacts. Phone numbers are unique across all users.
type ContactRepository interface {
	OwnedRepository[entity.Contact, entity.ContactPatch]
}
