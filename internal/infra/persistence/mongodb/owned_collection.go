package mongodb

import (
	"context"

	"sahara/internal/domain/repository"
	"sahara/internal/errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ownedCollection implements repository.OwnedRepository for a document type D
// that maps onto the domain type E. Every single-document operation uses one
// filter on both _id and user.
type ownedCollection[E any, P any, D any] struct {
	coll       *mongo.Collection
	toDomain   func(*D) (*E, error)
	fromDomain func(*E) *D
	setFields  func(P) bson.D
}

func ownedFilter(id, ownerID uuid.UUID) bson.D {
	return bson.D{
		{Key: "_id", Value: id.String()},
		{Key: "user", Value: ownerID.String()},
	}
}

func (c *ownedCollection[E, P, D]) Create(ctx context.Context, record *E) error {
	if _, err := c.coll.InsertOne(ctx, c.fromDomain(record)); err != nil {
		return translateWriteError(err, "failed to insert into "+c.coll.Name())
	}

	return nil
}

func (c *ownedCollection[E, P, D]) FindByOwner(ctx context.Context, ownerID uuid.UUID) ([]*E, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := c.coll.Find(ctx, bson.D{{Key: "user", Value: ownerID.String()}}, opts)
	if err != nil {
		return nil, translateReadError(err, repository.ErrRecordNotFound, "failed to query "+c.coll.Name())
	}
	defer cursor.Close(ctx)

	var docs []D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s", c.coll.Name())
	}

	records := make([]*E, 0, len(docs))
	for i := range docs {
		record, err := c.toDomain(&docs[i])
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func (c *ownedCollection[E, P, D]) FindOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error) {
	var doc D
	if err := c.coll.FindOne(ctx, ownedFilter(id, ownerID)).Decode(&doc); err != nil {
		return nil, translateReadError(err, repository.ErrRecordNotFound, "failed to find in "+c.coll.Name())
	}

	return c.toDomain(&doc)
}

func (c *ownedCollection[E, P, D]) UpdateOwned(ctx context.Context, id, ownerID uuid.UUID, patch P) (*E, error) {
	update := bson.D{{Key: "$set", Value: c.setFields(patch)}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc D
	err := c.coll.FindOneAndUpdate(ctx, ownedFilter(id, ownerID), update, opts).Decode(&doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, errors.WithStack(repository.ErrDuplicateKey)
		}

		return nil, translateReadError(err, repository.ErrRecordNotFound, "failed to update in "+c.coll.Name())
	}

	return c.toDomain(&doc)
}

func (c *ownedCollection[E, P, D]) DeleteOwned(ctx context.Context, id, ownerID uuid.UUID) (*E, error) {
	var doc D
	if err := c.coll.FindOneAndDelete(ctx, ownedFilter(id, ownerID)).Decode(&doc); err != nil {
		return nil, translateReadError(err, repository.ErrRecordNotFound, "failed to delete from "+c.coll.Name())
	}

	return c.toDomain(&doc)
}

func parseIDs(id, owner string) (uuid.UUID, uuid.UUID, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrapf(err, "stored _id %q is not a uuid", id)
	}

	parsedOwner, err := uuid.Parse(owner)
	if err != nil {
		return uuid.Nil, uuid.Nil, errors.Wrapf(err, "stored user %q is not a uuid", owner)
	}

	return parsedID, parsedOwner, nil
}
