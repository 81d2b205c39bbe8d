package mongodb

import (
	"sahara/internal/domain/entity"
	"sahara/internal/domain/repository"
	"sahara/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewReminderRepository is the constructor for the medication reminders collection repository.
func NewReminderRepository(db *mongo.Database) repository.ReminderRepository {
	return &ownedCollection[entity.Reminder, entity.ReminderPatch, model.ReminderDocument]{
		coll:       db.Collection(model.ReminderCollection),
		toDomain:   toReminderDomain,
		fromDomain: fromReminderDomain,
		setFields:  reminderSetFields,
	}
}

func fromReminderDomain(r *entity.Reminder) *model.ReminderDocument {
	return &model.ReminderDocument{
		ID:             r.ID.String(),
		MedicationName: r.MedicationName,
		Time:           r.Time,
		Frequency:      r.Frequency,
		IsTaken:        r.IsTaken,
		User:           r.OwnerID.String(),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

func toReminderDomain(doc *model.ReminderDocument) (*entity.Reminder, error) {
	id, owner, err := parseIDs(doc.ID, doc.User)
	if err != nil {
		return nil, err
	}

	return &entity.Reminder{
		ID:             id,
		OwnerID:        owner,
		MedicationName: doc.MedicationName,
		Time:           doc.Time,
		Frequency:      doc.Frequency,
		IsTaken:        doc.IsTaken,
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}, nil
}

func reminderSetFields(p entity.ReminderPatch) bson.D {
	set := bson.D{{Key: "updatedAt", Value: p.UpdatedAt}}
	if p.MedicationName != nil {
		set = append(set, bson.E{Key: "medicationName", Value: *p.MedicationName})
	}
	if p.Time != nil {
		set = append(set, bson.E{Key: "time", Value: *p.Time})
	}
	if p.Frequency != nil {
		set = append(set, bson.E{Key: "frequency", Value: *p.Frequency})
	}
	if p.IsTaken != nil {
		set = append(set, bson.E{Key: "isTaken", Value: *p.IsTaken})
	}

	return set
}
