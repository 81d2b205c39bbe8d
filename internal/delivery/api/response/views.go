package response

import (
	"time"

	"sahara/internal/domain/entity"

	"github.com/google/uuid"
)

// UserView is the public projection of a user. It has no password field.
type UserView struct {
	ID       uuid.UUID `json:"_id"`
	FullName string    `json:"fullname"`
	Email    string    `json:"email"`
}

type ContactView struct {
	ID           uuid.UUID `json:"_id"`
	Name         string    `json:"contactName"`
	PhoneNumber  string    `json:"phoneNumber"`
	Relationship string    `json:"relationship"`
	Primary      bool      `json:"primary"`
	User         uuid.UUID `json:"user"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type ReminderView struct {
	ID             uuid.UUID `json:"_id"`
	MedicationName string    `json:"medicationName"`
	Time           string    `json:"time"`
	Frequency      string    `json:"frequency"`
	IsTaken        bool      `json:"isTaken"`
	User           uuid.UUID `json:"user"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func NewUserView(u entity.PublicUser) UserView {
	return UserView{
		ID:       u.ID,
		FullName: u.FullName,
		Email:    u.Email,
	}
}

func NewContactView(c *entity.Contact) ContactView {
	return ContactView{
		ID:           c.ID,
		Name:         c.Name,
		PhoneNumber:  c.PhoneNumber,
		Relationship: c.Relationship,
		Primary:      c.Primary,
		User:         c.OwnerID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// NewContactViews always returns a non-nil slice so empty lists encode as [].
func NewContactViews(contacts []*entity.Contact) []ContactView {
	views := make([]ContactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, NewContactView(c))
	}

	return views
}

func NewReminderView(r *entity.Reminder) ReminderView {
	return ReminderView{
		ID:             r.ID,
		MedicationName: r.MedicationName,
		Time:           r.Time,
		Frequency:      r.Frequency,
		IsTaken:        r.IsTaken,
		User:           r.OwnerID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// NewReminderViews always returns a non-nil slice so empty lists encode as [].
func NewReminderViews(reminders []*entity.Reminder) []ReminderView {
	views := make([]ReminderView, 0, len(reminders))
	for _, r := range reminders {
		views = append(views, NewReminderView(r))
	}

	return views
}
