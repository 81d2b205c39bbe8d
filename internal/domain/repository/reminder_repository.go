package repository

import "sahara/internal/domain/entity"

// ReminderRepository stores medication reminders.
type ReminderRepository interface {
	OwnedRepository[entity.Reminder, entity.ReminderPatch]
}
