package dto

import (
	"github.com/shopspring/decimal"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// AddToCartRequest merges quantity into the buyer's cart.
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required"`
}

// CartLineResponse is one cart row joined with its product.
type CartLineResponse struct {
	ItemID    int64            `json:"item_id"`
	ProductID int64            `json:"product_id"`
	Name      string           `json:"name"`
	Brand     string           `json:"brand"`
	Price     *decimal.Decimal `json:"price"`
	Quantity  int              `json:"quantity"`
	Stock     int              `json:"stock"`
}

// NewCartLineResponse maps a domain cart line.
func NewCartLineResponse(line model.CartLine) CartLineResponse {
	return CartLineResponse{
		ItemID:    line.Item.ID,
		ProductID: line.Product.ID,
		Name:      line.Product.Name,
		Brand:     line.Product.Brand,
		Price:     line.Product.Price,
		Quantity:  line.Item.Quantity,
		Stock:     line.Product.Stock,
	}
}
