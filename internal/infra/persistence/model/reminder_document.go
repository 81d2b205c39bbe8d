package model

import "time"

// ReminderDocument is the stored shape of a medication reminder.
type ReminderDocument struct {
	ID             string    `bson:"_id"`
	MedicationName string    `bson:"medicationName"`
	Time           string    `bson:"time"`
	Frequency      string    `bson:"frequency"`
	IsTaken        bool      `bson:"isTaken"`
	User           string    `bson:"user"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}
