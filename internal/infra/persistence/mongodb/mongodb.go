// Package mongodb contains the concrete implementation of the persistence layer using MongoDB.
package mongodb

import (
	"context"
	"log/slog"

	"sahara/config"
	"sahara/internal/domain/lifecycle"
	"sahara/internal/errors"
	"sahara/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/fx"
)

const defaultDatabase = "sahara"

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New connects to MongoDB and returns the application database. The initial
// ping and index creation run on start, the client disconnects on stop.
func New(params Params) (*mongo.Database, error) {
	cfg := params.Config.Mongo
	if cfg == nil || cfg.URI == "" {
		return nil, errors.New("mongo configuration is missing")
	}

	clientOptions := options.Client().ApplyURI(cfg.URI)
	if cfg.ServerSelectionTimeout > 0 {
		clientOptions.SetServerSelectionTimeout(cfg.ServerSelectionTimeout)
	}
	if cfg.ConnectTimeout > 0 {
		clientOptions.SetConnectTimeout(cfg.ConnectTimeout)
	}
	if cfg.MaxPoolSize > 0 {
		clientOptions.SetMaxPoolSize(cfg.MaxPoolSize)
	}

	client, err := mongo.Connect(context.Background(), clientOptions)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create MongoDB client")
	}

	dbName := cfg.Database
	if dbName == "" {
		dbName = defaultDatabase
	}
	db := client.Database(dbName)

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(ctx, nil); err != nil {
				return errors.Wrap(err, "failed to ping MongoDB")
			}

			if err := EnsureIndexes(ctx, db); err != nil {
				return err
			}

			params.Logger.Info("Connected to MongoDB", slog.String("database", dbName))

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			return errors.WithStack(client.Disconnect(stopCtx))
		},
	})

	return db, nil
}

// EnsureIndexes creates the unique and lookup indexes the repositories rely on.
// Creating an index that already exists with the same definition is a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		model.UserCollection: {
			{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("email_unique").SetUnique(true),
			},
		},
		model.ContactCollection: {
			{
				Keys:    bson.D{{Key: "phoneNumber", Value: 1}},
				Options: options.Index().SetName("phoneNumber_unique").SetUnique(true),
			},
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("user_createdAt"),
			},
		},
		model.ReminderCollection: {
			{
				Keys:    bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: 1}},
				Options: options.Index().SetName("user_createdAt"),
			},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "failed to create indexes for %s", collection)
		}
	}

	return nil
}
