package usecase

import (
	"go.uber.org/fx"

	"github.com/saxtrade/marketplace/internal/config"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewCatalogUseCase,
	NewCartUseCase,
	NewInventoryUseCase,
	newOrderUseCase,
	NewFinanceUseCase,
)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	Config *config.Config
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Config.RestockOnCancel)
}
