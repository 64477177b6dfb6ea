package storage

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"

	"github.com/polkiloo/servicebooking/internal/config"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
	"github.com/polkiloo/servicebooking/internal/test"
)

func stubOpeners(t *testing.T, pg, mongo func(context.Context, *config.Config, *slog.Logger) (repository.Store, error)) {
	prevPG, prevMongo := openPostgres, openMongo
	t.Cleanup(func() { openPostgres, openMongo = prevPG, prevMongo })
	openPostgres, openMongo = pg, mongo
}

func TestNewStoreSelectsBackendByURI(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	pgStore, mongoStore := test.NewStoreStub(), test.NewStoreStub()
	stubOpeners(t,
		func(context.Context, *config.Config, *slog.Logger) (repository.Store, error) { return pgStore, nil },
		func(context.Context, *config.Config, *slog.Logger) (repository.Store, error) { return mongoStore, nil },
	)

	got, err := newStore(storeParams{Ctx: context.Background(), Config: &config.Config{DatabaseURI: "postgres://localhost/db"}, Logger: logger})
	require.NoError(t, err)
	assert.Same(t, pgStore, got)

	got, err = newStore(storeParams{Ctx: context.Background(), Config: &config.Config{DatabaseURI: "mongodb://localhost/db"}, Logger: logger})
	require.NoError(t, err)
	assert.Same(t, mongoStore, got)
}

func TestNewStorePropagatesOpenError(t *testing.T) {
	failing := func(context.Context, *config.Config, *slog.Logger) (repository.Store, error) {
		return nil, errors.New("dial")
	}
	stubOpeners(t, failing, failing)

	_, err := newStore(storeParams{
		Ctx:    context.Background(),
		Config: &config.Config{DatabaseURI: "postgres://localhost/db"},
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	assert.Error(t, err)
}

func TestRegisterLifecycleClosesStore(t *testing.T) {
	store := test.NewStoreStub()
	lc := fxtest.NewLifecycle(t)
	registerLifecycle(lc, store)

	require.NoError(t, lc.Start(context.Background()))
	assert.False(t, store.Closed())
	require.NoError(t, lc.Stop(context.Background()))
	assert.True(t, store.Closed())
}
