// Package model holds the BSON document shapes stored in MongoDB.
package model

import "time"

// Collection names. They match the collections created by the earlier Node deployment.
const (
	UserCollection     = "users"
	ContactCollection  = "contacts"
	ReminderCollection = "medicationreminders"
)

// UserDocument is the stored shape of a user. Identifiers are UUID strings.
type UserDocument struct {
	ID        string    `bson:"_id"`
	FullName  string    `bson:"fullname"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Contacts  []string  `bson:"contacts"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}
