package mongodb

import (
	"context"

	"sahara/internal/domain/entity"
	"sahara/internal/domain/repository"
	"sahara/internal/errors"
	"sahara/internal/infra/persistence/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{
		coll: db.Collection(model.UserCollection),
	}
}

// Create persists a new user. The unique email index turns a concurrent
// duplicate registration into ErrDuplicateKey.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	if _, err := repo.coll.InsertOne(ctx, fromUserDomain(user)); err != nil {
		return translateWriteError(err, "failed to create user")
	}

	return nil
}

// FindByID retrieves a user by its unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "_id", Value: id.String()}})
}

// FindByEmail retrieves a user by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, bson.D{{Key: "email", Value: email}})
}

// AddContactRef appends the contact id to the advisory list if it is not already present.
func (repo *userRepository) AddContactRef(ctx context.Context, userID, contactID uuid.UUID) error {
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "contacts", Value: contactID.String()}}}}

	return repo.updateContacts(ctx, userID, update)
}

// RemoveContactRef pulls the contact id from the advisory list.
func (repo *userRepository) RemoveContactRef(ctx context.Context, userID, contactID uuid.UUID) error {
	update := bson.D{{Key: "$pull", Value: bson.D{{Key: "contacts", Value: contactID.String()}}}}

	return repo.updateContacts(ctx, userID, update)
}

func (repo *userRepository) updateContacts(ctx context.Context, userID uuid.UUID, update bson.D) error {
	result, err := repo.coll.UpdateOne(ctx, bson.D{{Key: "_id", Value: userID.String()}}, update)
	if err != nil {
		return translateWriteError(err, "failed to update user contacts")
	}
	if result.MatchedCount == 0 {
		return errors.WithStack(repository.ErrUserNotFound)
	}

	return nil
}

func (repo *userRepository) findOne(ctx context.Context, filter bson.D) (*entity.User, error) {
	var doc model.UserDocument
	if err := repo.coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translateReadError(err, repository.ErrUserNotFound, "failed to find user")
	}

	return toUserDomain(&doc)
}

func fromUserDomain(u *entity.User) *model.UserDocument {
	contacts := make([]string, 0, len(u.ContactIDs))
	for _, id := range u.ContactIDs {
		contacts = append(contacts, id.String())
	}

	return &model.UserDocument{
		ID:        u.ID.String(),
		FullName:  u.FullName,
		Email:     u.Email,
		Password:  u.PasswordHash,
		Contacts:  contacts,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserDomain(doc *model.UserDocument) (*entity.User, error) {
	id, err := uuid.Parse(doc.ID)
	if err != nil {
		return nil, errors.Wrapf(err, "stored _id %q is not a uuid", doc.ID)
	}

	contactIDs := make([]uuid.UUID, 0, len(doc.Contacts))
	for _, raw := range doc.Contacts {
		contactID, err := uuid.Parse(raw)
		if err != nil {
			continue
		}
		contactIDs = append(contactIDs, contactID)
	}

	return &entity.User{
		ID:           id,
		FullName:     doc.FullName,
		Email:        doc.Email,
		PasswordHash: doc.Password,
		ContactIDs:   contactIDs,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}
