package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus describes order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Valid reports whether the status is a known value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusShipped, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

// orderTransitions is the complete set of legal status edges.
// Transitions are strictly forward; re-applying the current status
// is not a legal edge.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending: {OrderStatusPaid, OrderStatusCancelled},
	OrderStatusPaid:    {OrderStatusShipped},
	OrderStatusShipped: {OrderStatusCompleted},
}

// CanTransitionTo reports whether the edge s -> next is legal.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// RevenueBearing reports whether orders in this status count toward sales.
func (s OrderStatus) RevenueBearing() bool {
	return s == OrderStatusPaid || s == OrderStatusShipped || s == OrderStatusCompleted
}

// OrderItem is a frozen line snapshot captured at order time. It never
// changes, even if the underlying product is edited or deleted later.
type OrderItem struct {
	ProductID int64
	Name      string
	Brand     string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal returns Price x Quantity using exact decimal arithmetic.
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Order is an immutable record of a completed checkout. Only Status
// and UpdatedAt change after creation.
type Order struct {
	ID              int64
	Number          string
	BuyerID         int64
	SellerID        int64
	Items           []OrderItem
	TotalAmount     decimal.Decimal
	Status          OrderStatus
	PaymentMethod   string
	ShippingAddress string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SumItems returns the exact sum of line subtotals.
func SumItems(items []OrderItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// OrderNumber derives the human-readable order number from the
// creation timestamp and allocated identifier.
func OrderNumber(createdAt time.Time, id int64) string {
	return fmt.Sprintf("SAX-%s-%06d", createdAt.UTC().Format("20060102150405"), id)
}

// OrderFilter narrows order listings. Zero fields match everything.
type OrderFilter struct {
	BuyerID  int64
	SellerID int64
	Status   OrderStatus
}
