package storage

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/saxtrade/marketplace/internal/config"
	"github.com/saxtrade/marketplace/internal/domain/repository"
	"github.com/saxtrade/marketplace/internal/storage/memory"
	"github.com/saxtrade/marketplace/internal/storage/postgres"
)

// Module wires the repository factory and per-domain repositories.
// With a database URI configured the PostgreSQL storage is used;
// without one the service runs on the in-process store.
var Module = fx.Options(
	fx.Provide(newFactory),
	fx.Provide(
		func(f repository.Factory) repository.UserRepository { return f.Users() },
		func(f repository.Factory) repository.ProductRepository { return f.Products() },
		func(f repository.Factory) repository.CartRepository { return f.Carts() },
		func(f repository.Factory) repository.OrderRepository { return f.Orders() },
		func(f repository.Factory) repository.FinanceRepository { return f.Finance() },
	),
	fx.Invoke(registerLifecycle),
)

type factoryParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newFactory(p factoryParams) (repository.Factory, error) {
	if p.Config.DatabaseURI == "" {
		p.Logger.Warn("no database URI configured, using in-memory storage")
		return memory.New(), nil
	}
	return postgres.New(p.Ctx, p.Config.DatabaseURI, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, factory repository.Factory) {
	closer, ok := factory.(interface{ Close() })
	if !ok {
		return
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			closer.Close()
			return nil
		},
	})
}
