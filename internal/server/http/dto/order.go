package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// PlaceOrderRequest converts the buyer's cart into an order.
type PlaceOrderRequest struct {
	SellerID        int64  `json:"seller_id" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
}

// TransitionRequest moves an order to a new status.
type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// OrderItemResponse is one frozen line snapshot.
type OrderItemResponse struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	Brand     string          `json:"brand"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// OrderResponse mirrors a placed order.
type OrderResponse struct {
	ID              int64               `json:"id"`
	Number          string              `json:"number"`
	BuyerID         int64               `json:"buyer_id"`
	SellerID        int64               `json:"seller_id"`
	Items           []OrderItemResponse `json:"items"`
	TotalAmount     decimal.Decimal     `json:"total_amount"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"payment_method"`
	ShippingAddress string              `json:"shipping_address"`
	CreatedAt       time.Time           `json:"created_at"`
}

// NewOrderResponse maps a domain order.
func NewOrderResponse(order model.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Brand:     item.Brand,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Subtotal:  item.Subtotal(),
		})
	}
	return OrderResponse{
		ID:              order.ID,
		Number:          order.Number,
		BuyerID:         order.BuyerID,
		SellerID:        order.SellerID,
		Items:           items,
		TotalAmount:     order.TotalAmount,
		Status:          string(order.Status),
		PaymentMethod:   order.PaymentMethod,
		ShippingAddress: order.ShippingAddress,
		CreatedAt:       order.CreatedAt,
	}
}
