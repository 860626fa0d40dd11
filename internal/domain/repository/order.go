package repository

import (
	"context"
	"time"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// PlacementRequest carries checkout arguments into the transactional
// order creation.
type PlacementRequest struct {
	BuyerID         int64
	SellerID        int64
	PaymentMethod   string
	ShippingAddress string
}

// OrderRepository describes persistence operations with orders.
type OrderRepository interface {
	// PlaceFromCart converts the buyer's cart into an order as one
	// atomic unit: validate every line, decrement stock, capture
	// frozen snapshots, persist the order, clear the cart. On any
	// failure nothing is committed.
	PlaceFromCart(ctx context.Context, req PlacementRequest) (*model.Order, error)
	GetByID(ctx context.Context, id int64) (*model.Order, error)
	List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error)
	// UpdateStatus validates the edge against the order's current
	// status under the same transaction that applies it. With restock
	// set, a transition to cancelled returns reserved stock.
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, restock bool) (*model.Order, error)
	// ListStalePending returns pending orders created before cutoff.
	ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error)
}
