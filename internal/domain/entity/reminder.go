package entity

import (
	"time"

	"github.com/google/uuid"
)

// Reminder is a medication reminder owned by exactly one user.
type Reminder struct {
	ID             uuid.UUID
	OwnerID        uuid.UUID
	MedicationName string
	Time           string // Time of day as entered by the user, e.g. "08:00".
	Frequency      string
	IsTaken        bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ReminderPatch carries a partial update. Nil fields are left untouched.
type ReminderPatch struct {
	MedicationName *string
	Time           *string
	Frequency      *string
	IsTaken        *bool
	UpdatedAt      time.Time
}

// Apply copies the present fields of the patch onto the reminder.
func (p ReminderPatch) Apply(r *Reminder) {
	if p.MedicationName != nil {
		r.MedicationName = *p.MedicationName
	}
	if p.Time != nil {
		r.Time = *p.Time
	}
	if p.Frequency != nil {
		r.Frequency = *p.Frequency
	}
	if p.IsTaken != nil {
		r.IsTaken = *p.IsTaken
	}
	if !p.UpdatedAt.IsZero() {
		r.UpdatedAt = p.UpdatedAt
	}
}
