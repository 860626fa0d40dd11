package app

import (
	"context"
	"time"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
	pkgAuth "github.com/saxtrade/marketplace/internal/pkg/auth"
	"github.com/saxtrade/marketplace/internal/usecase"
)

// MarketplaceFacade aggregates the core operations exposed to the
// transport layer and background workers.
type MarketplaceFacade struct {
	auth      *usecase.AuthUseCase
	catalog   *usecase.CatalogUseCase
	cart      *usecase.CartUseCase
	inventory *usecase.InventoryUseCase
	orders    *usecase.OrderUseCase
	finance   *usecase.FinanceUseCase
}

// NewMarketplaceFacade constructs MarketplaceFacade.
func NewMarketplaceFacade(
	auth *usecase.AuthUseCase,
	catalog *usecase.CatalogUseCase,
	cart *usecase.CartUseCase,
	inventory *usecase.InventoryUseCase,
	orders *usecase.OrderUseCase,
	finance *usecase.FinanceUseCase,
) *MarketplaceFacade {
	return &MarketplaceFacade{
		auth:      auth,
		catalog:   catalog,
		cart:      cart,
		inventory: inventory,
		orders:    orders,
		finance:   finance,
	}
}

// --- auth ---

func (f *MarketplaceFacade) Register(ctx context.Context, login, password, company string, role model.Role) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password, company, role)
	return token, err
}

func (f *MarketplaceFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *MarketplaceFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

// --- catalog ---

func (f *MarketplaceFacade) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	return f.catalog.CreateProduct(ctx, product)
}

func (f *MarketplaceFacade) Product(ctx context.Context, id int64) (*model.Product, error) {
	return f.catalog.GetProduct(ctx, id)
}

func (f *MarketplaceFacade) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	return f.catalog.ListProducts(ctx, filter)
}

func (f *MarketplaceFacade) UpdateProduct(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	return f.catalog.UpdateProduct(ctx, id, patch)
}

func (f *MarketplaceFacade) DeleteProduct(ctx context.Context, id int64) error {
	return f.catalog.DeleteProduct(ctx, id)
}

// --- cart ---

func (f *MarketplaceFacade) AddToCart(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error) {
	return f.cart.Add(ctx, buyerID, productID, quantity)
}

func (f *MarketplaceFacade) RemoveFromCart(ctx context.Context, buyerID, itemID int64) error {
	return f.cart.Remove(ctx, buyerID, itemID)
}

func (f *MarketplaceFacade) ClearCart(ctx context.Context, buyerID int64) error {
	return f.cart.Clear(ctx, buyerID)
}

func (f *MarketplaceFacade) Cart(ctx context.Context, buyerID int64) ([]model.CartLine, error) {
	return f.cart.List(ctx, buyerID)
}

// --- inventory ---

func (f *MarketplaceFacade) AdjustStock(ctx context.Context, productID int64, delta int) (*model.Product, error) {
	return f.inventory.AdjustStock(ctx, productID, delta)
}

func (f *MarketplaceFacade) SetStock(ctx context.Context, productID int64, stock int) (*model.Product, error) {
	return f.inventory.SetStock(ctx, productID, stock)
}

func (f *MarketplaceFacade) InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error) {
	return f.inventory.Snapshot(ctx, sellerID)
}

// --- orders ---

func (f *MarketplaceFacade) PlaceOrder(ctx context.Context, buyerID, sellerID int64, paymentMethod, shippingAddress string) (*model.Order, error) {
	return f.orders.Place(ctx, buyerID, sellerID, paymentMethod, shippingAddress)
}

func (f *MarketplaceFacade) TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	return f.orders.Transition(ctx, orderID, status)
}

func (f *MarketplaceFacade) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	return f.orders.Get(ctx, orderID)
}

func (f *MarketplaceFacade) BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return f.orders.ListByBuyer(ctx, buyerID)
}

func (f *MarketplaceFacade) SellerOrders(ctx context.Context, sellerID int64) ([]model.Order, error) {
	return f.orders.ListBySeller(ctx, sellerID)
}

func (f *MarketplaceFacade) StalePendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return f.orders.StalePending(ctx, cutoff, limit)
}

// --- finance ---

func (f *MarketplaceFacade) FinanceSummary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error) {
	return f.finance.Summary(ctx, sellerID)
}

func (f *MarketplaceFacade) SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error) {
	return f.finance.SalesByDimension(ctx, sellerID, dim)
}
