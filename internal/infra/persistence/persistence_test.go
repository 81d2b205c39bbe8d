package persistence

import (
	"io"
	"log/slog"
	"testing"

	"sahara/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newParams(t *testing.T, driver string) Params {
	cfg := &config.Config{}
	cfg.Storage.Driver = driver

	return Params{
		Lifecycle: fxtest.NewLifecycle(t),
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNew_MemoryDriver(t *testing.T) {
	repos, err := New(newParams(t, config.StorageDriverMemory))
	require.NoError(t, err)

	assert.NotNil(t, repos.UserRepo)
	assert.NotNil(t, repos.ContactRepo)
	assert.NotNil(t, repos.ReminderRepo)
}

func TestNew_MongoDriverRequiresURI(t *testing.T) {
	_, err := New(newParams(t, config.StorageDriverMongo))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mongo configuration is missing")
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(newParams(t, "sqlite"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown storage driver")
}
