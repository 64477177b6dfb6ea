package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/servicebooking/internal/config"
	"github.com/polkiloo/servicebooking/internal/domain/repository"
	"github.com/polkiloo/servicebooking/internal/storage/mongo"
	"github.com/polkiloo/servicebooking/internal/storage/postgres"
)

// Module wires the storage backend selected by the database URI and the
// repository adapters it produces.
var Module = fx.Options(
	fx.Provide(newStore),
	fx.Provide(
		func(s repository.Store) repository.UserRepository { return s.Users() },
		func(s repository.Store) repository.ServiceRepository { return s.Services() },
		func(s repository.Store) repository.LedgerRepository { return s.Ledger() },
		func(s repository.Store) repository.BlogRepository { return s.Blogs() },
		func(s repository.Store) repository.ContactRepository { return s.Contacts() },
		func(s repository.Store) repository.ReviewRepository { return s.Reviews() },
	),
	fx.Invoke(registerLifecycle),
)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

var (
	openPostgres = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.Store, error) {
		return postgres.New(ctx, cfg.DatabaseURI, logger)
	}
	openMongo = func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repository.Store, error) {
		return mongo.New(ctx, cfg.DatabaseURI, cfg.DatabaseName, logger)
	}
)

func newStore(p storeParams) (repository.Store, error) {
	open := openPostgres
	if p.Config.DatabaseDriver() == config.DriverMongo {
		open = openMongo
	}
	store, err := open(p.Ctx, p.Config, p.Logger)
	if err != nil {
		return nil, err
	}
	p.Logger.Info("storage initialized", slog.String("driver", p.Config.DatabaseDriver()))
	return store, nil
}

func registerLifecycle(lc fx.Lifecycle, store repository.Store) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			store.Close()
			return nil
		},
	})
}
