package mongodb

import (
	"sahara/internal/domain/entity"
	"sahara/internal/domain/repository"
	"sahara/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewContactRepository is the constructor for the contacts collection repository.
func NewContactRepository(db *mongo.Database) repository.ContactRepository {
	return &ownedCollection[entity.Contact, entity.ContactPatch, model.ContactDocument]{
		coll:       db.Collection(model.ContactCollection),
		toDomain:   toContactDomain,
		fromDomain: fromContactDomain,
		setFields:  contactSetFields,
	}
}

func fromContactDomain(c *entity.Contact) *model.ContactDocument {
	return &model.ContactDocument{
		ID:           c.ID.String(),
		ContactName:  c.Name,
		PhoneNumber:  c.PhoneNumber,
		Relationship: c.Relationship,
		Primary:      c.Primary,
		User:         c.OwnerID.String(),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toContactDomain(doc *model.ContactDocument) (*entity.Contact, error) {
	id, owner, err := parseIDs(doc.ID, doc.User)
	if err != nil {
		return nil, err
	}

	return &entity.Contact{
		ID:           id,
		OwnerID:      owner,
		Name:         doc.ContactName,
		PhoneNumber:  doc.PhoneNumber,
		Relationship: doc.Relationship,
		Primary:      doc.Primary,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

func contactSetFields(p entity.ContactPatch) bson.D {
	set := bson.D{{Key: "updatedAt", Value: p.UpdatedAt}}
	if p.Name != nil {
		set = append(set, bson.E{Key: "contactName", Value: *p.Name})
	}
	if p.PhoneNumber != nil {
		set = append(set, bson.E{Key: "phoneNumber", Value: *p.PhoneNumber})
	}
	if p.Relationship != nil {
		set = append(set, bson.E{Key: "relationship", Value: *p.Relationship})
	}
	if p.Primary != nil {
		set = append(set, bson.E{Key: "primary", Value: *p.Primary})
	}

	return set
}
