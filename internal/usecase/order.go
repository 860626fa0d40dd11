package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// OrderUseCase drives checkout and the order status state machine.
type OrderUseCase struct {
	orders          repository.OrderRepository
	restockOnCancel bool
}

// NewOrderUseCase constructs OrderUseCase. restockOnCancel is an
// explicit policy: when enabled, cancelling a pending order returns
// the stock reserved at placement time.
func NewOrderUseCase(orders repository.OrderRepository, restockOnCancel bool) *OrderUseCase {
	return &OrderUseCase{orders: orders, restockOnCancel: restockOnCancel}
}

// Place converts the buyer's cart into an order. The whole sequence
// (validate every line, decrement stock, snapshot lines, persist,
// clear cart) commits atomically or not at all.
func (u *OrderUseCase) Place(ctx context.Context, buyerID, sellerID int64, paymentMethod, shippingAddress string) (*model.Order, error) {
	paymentMethod = strings.TrimSpace(paymentMethod)
	shippingAddress = strings.TrimSpace(shippingAddress)
	if buyerID == 0 || sellerID == 0 || paymentMethod == "" || shippingAddress == "" {
		return nil, domainErrors.ErrInvalidArgument
	}

	return u.orders.PlaceFromCart(ctx, repository.PlacementRequest{
		BuyerID:         buyerID,
		SellerID:        sellerID,
		PaymentMethod:   paymentMethod,
		ShippingAddress: shippingAddress,
	})
}

// Transition moves an order along the status state machine. Unknown
// statuses are rejected before touching storage; the edge itself is
// re-validated against the current status inside the repository's
// transaction.
func (u *OrderUseCase) Transition(ctx context.Context, orderID int64, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	restock := u.restockOnCancel && status == model.OrderStatusCancelled
	return u.orders.UpdateStatus(ctx, orderID, status, restock)
}

// Get fetches one order with its line snapshots.
func (u *OrderUseCase) Get(ctx context.Context, orderID int64) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// ListByBuyer returns the buyer's order history.
func (u *OrderUseCase) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	return u.orders.List(ctx, model.OrderFilter{BuyerID: buyerID})
}

// ListBySeller returns orders placed against the seller's stock.
func (u *OrderUseCase) ListBySeller(ctx context.Context, sellerID int64) ([]model.Order, error) {
	return u.orders.List(ctx, model.OrderFilter{SellerID: sellerID})
}

// StalePending returns pending orders older than cutoff, for the
// background reaper.
func (u *OrderUseCase) StalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	return u.orders.ListStalePending(ctx, cutoff, limit)
}
