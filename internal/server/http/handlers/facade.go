package handlers

import (
	"context"
	"time"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
	pkgAuth "github.com/saxtrade/marketplace/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password, company string, role model.Role) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// CatalogFacade encapsulates product listing operations exposed via HTTP.
type CatalogFacade interface {
	CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error)
	Product(ctx context.Context, id int64) (*model.Product, error)
	Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// CartFacade provides cart operations.
type CartFacade interface {
	AddToCart(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error)
	RemoveFromCart(ctx context.Context, buyerID, itemID int64) error
	ClearCart(ctx context.Context, buyerID int64) error
	Cart(ctx context.Context, buyerID int64) ([]model.CartLine, error)
}

// InventoryFacade provides stock operations.
type InventoryFacade interface {
	AdjustStock(ctx context.Context, productID int64, delta int) (*model.Product, error)
	SetStock(ctx context.Context, productID int64, stock int) (*model.Product, error)
	InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error)
}

// OrderFacade provides checkout and order lifecycle operations.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, buyerID, sellerID int64, paymentMethod, shippingAddress string) (*model.Order, error)
	TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error)
	Order(ctx context.Context, orderID int64) (*model.Order, error)
	BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error)
	SellerOrders(ctx context.Context, sellerID int64) ([]model.Order, error)
	StalePendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}

// FinanceFacade provides aggregate reads.
type FinanceFacade interface {
	FinanceSummary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error)
	SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error)
}

// MarketplaceFacade aggregates the full set of operations used across handlers.
type MarketplaceFacade interface {
	AuthFacade
	CatalogFacade
	CartFacade
	InventoryFacade
	OrderFacade
	FinanceFacade
}
