// Package persistence selects the repository implementations for the configured storage driver.
package persistence

import (
	"log/slog"

	"sahara/config"
	"sahara/internal/domain/repository"
	"sahara/internal/errors"
	"sahara/internal/infra/persistence/memory"
	"sahara/internal/infra/persistence/mongodb"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories handed to the use cases.
type Repositories struct {
	fx.Out

	UserRepo     repository.UserRepository
	ContactRepo  repository.ContactRepository
	ReminderRepo repository.ReminderRepository
}

// New builds the repositories for cfg.Storage.Driver.
func New(params Params) (Repositories, error) {
	switch params.Config.Storage.Driver {
	case config.StorageDriverMemory:
		params.Logger.Warn("Using in-memory storage, data is lost on restart")
		store := memory.NewStore()

		return Repositories{
			UserRepo:     store.Users(),
			ContactRepo:  store.Contacts(),
			ReminderRepo: store.Reminders(),
		}, nil
	case config.StorageDriverMongo:
		db, err := mongodb.New(mongodb.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			UserRepo:     mongodb.NewUserRepository(db),
			ContactRepo:  mongodb.NewContactRepository(db),
			ReminderRepo: mongodb.NewReminderRepository(db),
		}, nil
	default:
		return Repositories{}, errors.Errorf("unknown storage driver: %s", params.Config.Storage.Driver)
	}
}
