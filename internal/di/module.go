package di

import (
	"go.uber.org/fx"

	"github.com/saxtrade/marketplace/internal/app"
	"github.com/saxtrade/marketplace/internal/config"
	"github.com/saxtrade/marketplace/internal/logger"
	"github.com/saxtrade/marketplace/internal/pkg/auth"
	"github.com/saxtrade/marketplace/internal/server/http/handlers"
	"github.com/saxtrade/marketplace/internal/server/http/router"
	"github.com/saxtrade/marketplace/internal/storage"
	"github.com/saxtrade/marketplace/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		storage.Module,
		usecase.Module,
		fx.Provide(func(facade *app.MarketplaceFacade) handlers.MarketplaceFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
