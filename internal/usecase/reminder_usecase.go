package usecase

import (
	"context"

	"sahara/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReminderInput defines the data required to create a medication reminder.
type CreateReminderInput struct {
	MedicationName string
	Time           string
	Frequency      string
}

// UpdateReminderInput is a partial update. Nil fields are left untouched and
// present string fields must be non-empty.
type UpdateReminderInput struct {
	MedicationName *string
	Time           *string
	Frequency      *string
	IsTaken        *bool
}

// ReminderUsecase defines the medication reminder operations, scoped to ownerID.
type ReminderUsecase interface {
	CreateReminder(ctx context.Context, ownerID uuid.UUID, input *CreateReminderInput) (*entity.Reminder, error)
	ListReminders(ctx context.Context, ownerID uuid.UUID) ([]*entity.Reminder, error)
	GetReminder(ctx context.Context, ownerID, reminderID uuid.UUID) (*entity.Reminder, error)
	UpdateReminder(ctx context.Context, ownerID, reminderID uuid.UUID, input *UpdateReminderInput) (*entity.Reminder, error)
	DeleteReminder(ctx context.Context, ownerID, reminderID uuid.UUID) error
}
