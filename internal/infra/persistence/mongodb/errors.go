package mongodb

import (
	domainerrors "sahara/internal/domain/errors"
	"sahara/internal/domain/repository"
	"sahara/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
)

// translateWriteError maps driver write failures onto repository errors.
func translateWriteError(err error, details string) error {
	if mongo.IsDuplicateKeyError(err) {
		return errors.WithStack(repository.ErrDuplicateKey)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// translateReadError maps a missing document onto notFound.
func translateReadError(err, notFound error, details string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return errors.WithStack(notFound)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
