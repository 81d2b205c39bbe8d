package model

import "time"

// ContactDocument is the stored shape of an emergency contact.
type ContactDocument struct {
	ID           string    `bson:"_id"`
	ContactName  string    `bson:"contactName"`
	PhoneNumber  string    `bson:"phoneNumber"`
	Relationship string    `bson:"relationship"`
	Primary      bool      `bson:"primary"`
	User         string    `bson:"user"`
	CreatedAt    time.Time `bson:"createdAt"`
	UpdatedAt    time.Time `bson:"updatedAt"`
}
