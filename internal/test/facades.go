package test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// CatalogFacadeStub provides controllable behaviour for catalog endpoints.
type CatalogFacadeStub struct {
	CreateProductFn func(context.Context, *model.Product) (*model.Product, error)
	ProductFn       func(context.Context, int64) (*model.Product, error)
	ProductsFn      func(context.Context, repository.ProductFilter) ([]model.Product, error)
	UpdateProductFn func(context.Context, int64, model.ProductPatch) (*model.Product, error)
	DeleteProductFn func(context.Context, int64) error
}

// CreateProduct delegates to override or echoes the listing with an id.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

// Product returns a default listing or delegates to override.
func (s CatalogFacadeStub) Product(ctx context.Context, id int64) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Mark VI", Brand: "Selmer", Category: model.CategoryTenor, Status: model.ProductStatusActive}, nil
}

// Products returns predefined listings.
func (s CatalogFacadeStub) Products(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx, filter)
	}
	return []model.Product{{ID: 1, Name: "Mark VI", Brand: "Selmer"}}, nil
}

// UpdateProduct delegates to override or returns the patched shell.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, patch)
	}
	product := model.Product{ID: id, Status: model.ProductStatusActive}
	patch.Apply(&product)
	return &product, nil
}

// DeleteProduct executes configured delete handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id int64) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// CartFacadeStub simulates cart operations.
type CartFacadeStub struct {
	AddToCartFn      func(context.Context, int64, int64, int) (*model.CartItem, error)
	RemoveFromCartFn func(context.Context, int64, int64) error
	ClearCartFn      func(context.Context, int64) error
	CartFn           func(context.Context, int64) ([]model.CartLine, error)
}

// AddToCart returns the merged row or delegates to override.
func (s CartFacadeStub) AddToCart(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error) {
	if s.AddToCartFn != nil {
		return s.AddToCartFn(ctx, buyerID, productID, quantity)
	}
	return &model.CartItem{ID: 1, BuyerID: buyerID, ProductID: productID, Quantity: quantity}, nil
}

// RemoveFromCart executes configured removal handler.
func (s CartFacadeStub) RemoveFromCart(ctx context.Context, buyerID, itemID int64) error {
	if s.RemoveFromCartFn != nil {
		return s.RemoveFromCartFn(ctx, buyerID, itemID)
	}
	return nil
}

// ClearCart executes configured clear handler.
func (s CartFacadeStub) ClearCart(ctx context.Context, buyerID int64) error {
	if s.ClearCartFn != nil {
		return s.ClearCartFn(ctx, buyerID)
	}
	return nil
}

// Cart returns predefined cart lines.
func (s CartFacadeStub) Cart(ctx context.Context, buyerID int64) ([]model.CartLine, error) {
	if s.CartFn != nil {
		return s.CartFn(ctx, buyerID)
	}
	return nil, nil
}

// InventoryFacadeStub simulates stock operations.
type InventoryFacadeStub struct {
	AdjustStockFn       func(context.Context, int64, int) (*model.Product, error)
	SetStockFn          func(context.Context, int64, int) (*model.Product, error)
	InventorySnapshotFn func(context.Context, int64) ([]model.InventoryRow, error)
}

// AdjustStock delegates to override or returns adjusted shell.
func (s InventoryFacadeStub) AdjustStock(ctx context.Context, productID int64, delta int) (*model.Product, error) {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, productID, delta)
	}
	return &model.Product{ID: productID, Stock: delta}, nil
}

// SetStock delegates to override or returns updated shell.
func (s InventoryFacadeStub) SetStock(ctx context.Context, productID int64, stock int) (*model.Product, error) {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, productID, stock)
	}
	return &model.Product{ID: productID, Stock: stock}, nil
}

// InventorySnapshot returns preconfigured rows.
func (s InventoryFacadeStub) InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error) {
	if s.InventorySnapshotFn != nil {
		return s.InventorySnapshotFn(ctx, sellerID)
	}
	return nil, nil
}

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceOrderFn         func(context.Context, int64, int64, string, string) (*model.Order, error)
	TransitionOrderFn    func(context.Context, int64, model.OrderStatus) (*model.Order, error)
	OrderFn              func(context.Context, int64) (*model.Order, error)
	BuyerOrdersFn        func(context.Context, int64) ([]model.Order, error)
	SellerOrdersFn       func(context.Context, int64) ([]model.Order, error)
	StalePendingOrdersFn func(context.Context, time.Time, int) ([]model.Order, error)
}

// PlaceOrder delegates to override or returns a pending order.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, buyerID, sellerID int64, paymentMethod, shippingAddress string) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, buyerID, sellerID, paymentMethod, shippingAddress)
	}
	return &model.Order{ID: 1, BuyerID: buyerID, SellerID: sellerID, Status: model.OrderStatusPending, TotalAmount: decimal.Zero}, nil
}

// TransitionOrder delegates to override or echoes the new status.
func (s OrderFacadeStub) TransitionOrder(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if s.TransitionOrderFn != nil {
		return s.TransitionOrderFn(ctx, orderID, status)
	}
	return &model.Order{ID: orderID, Status: status}, nil
}

// Order returns a default order for given identifier.
func (s OrderFacadeStub) Order(ctx context.Context, orderID int64) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, orderID)
	}
	return &model.Order{ID: orderID, BuyerID: 1, SellerID: 2, Status: model.OrderStatusPending}, nil
}

// BuyerOrders returns predefined purchases.
func (s OrderFacadeStub) BuyerOrders(ctx context.Context, buyerID int64) ([]model.Order, error) {
	if s.BuyerOrdersFn != nil {
		return s.BuyerOrdersFn(ctx, buyerID)
	}
	return []model.Order{{ID: 1, BuyerID: buyerID}}, nil
}

// SellerOrders returns predefined sales.
func (s OrderFacadeStub) SellerOrders(ctx context.Context, sellerID int64) ([]model.Order, error) {
	if s.SellerOrdersFn != nil {
		return s.SellerOrdersFn(ctx, sellerID)
	}
	return []model.Order{{ID: 1, SellerID: sellerID}}, nil
}

// StalePendingOrders returns preconfigured stale orders.
func (s OrderFacadeStub) StalePendingOrders(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.StalePendingOrdersFn != nil {
		return s.StalePendingOrdersFn(ctx, cutoff, limit)
	}
	return nil, nil
}

// FinanceFacadeStub simulates aggregate reads.
type FinanceFacadeStub struct {
	FinanceSummaryFn   func(context.Context, int64) (*model.FinanceSummary, error)
	SalesByDimensionFn func(context.Context, int64, model.SalesDimension) ([]model.SalesBucket, error)
}

// FinanceSummary returns stored summary or empty data.
func (s FinanceFacadeStub) FinanceSummary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error) {
	if s.FinanceSummaryFn != nil {
		return s.FinanceSummaryFn(ctx, sellerID)
	}
	return &model.FinanceSummary{TotalSales: decimal.Zero}, nil
}

// SalesByDimension returns preconfigured buckets.
func (s FinanceFacadeStub) SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error) {
	if s.SalesByDimensionFn != nil {
		return s.SalesByDimensionFn(ctx, sellerID, dim)
	}
	return nil, nil
}

// MarketplaceFacadeStub aggregates facade dependencies for HTTP layer tests.
type MarketplaceFacadeStub struct {
	AuthFacadeStub
	CatalogFacadeStub
	CartFacadeStub
	InventoryFacadeStub
	OrderFacadeStub
	FinanceFacadeStub
}
