package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// ProductRequest carries a new catalog listing.
type ProductRequest struct {
	Name        string           `json:"name" binding:"required"`
	Brand       string           `json:"brand" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Model       string           `json:"model"`
	Year        int              `json:"year"`
	Condition   string           `json:"condition"`
	Material    string           `json:"material"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
	Status      string           `json:"status"`
}

// ProductPatchRequest carries a partial update; absent fields are left
// untouched. ClearPrice switches the listing to quote-on-request.
type ProductPatchRequest struct {
	Name        *string          `json:"name"`
	Brand       *string          `json:"brand"`
	Category    *string          `json:"category"`
	Model       *string          `json:"model"`
	Year        *int             `json:"year"`
	Condition   *string          `json:"condition"`
	Material    *string          `json:"material"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	ClearPrice  bool             `json:"clear_price"`
	Status      *string          `json:"status"`
}

// Patch converts the request into a domain patch.
func (r ProductPatchRequest) Patch() model.ProductPatch {
	patch := model.ProductPatch{
		Name:        r.Name,
		Brand:       r.Brand,
		Model:       r.Model,
		Year:        r.Year,
		Condition:   r.Condition,
		Material:    r.Material,
		Description: r.Description,
		Price:       r.Price,
		ClearPrice:  r.ClearPrice,
	}
	if r.Category != nil {
		category := model.Category(*r.Category)
		patch.Category = &category
	}
	if r.Status != nil {
		status := model.ProductStatus(*r.Status)
		patch.Status = &status
	}
	return patch
}

// ProductResponse mirrors a catalog listing.
type ProductResponse struct {
	ID          int64            `json:"id"`
	SellerID    int64            `json:"seller_id"`
	Name        string           `json:"name"`
	Brand       string           `json:"brand"`
	Category    string           `json:"category"`
	Model       string           `json:"model,omitempty"`
	Year        int              `json:"year,omitempty"`
	Condition   string           `json:"condition,omitempty"`
	Material    string           `json:"material,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price"`
	Stock       int              `json:"stock"`
	Status      string           `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
}

// NewProductResponse maps a domain product.
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		SellerID:    p.SellerID,
		Name:        p.Name,
		Brand:       p.Brand,
		Category:    string(p.Category),
		Model:       p.Model,
		Year:        p.Year,
		Condition:   p.Condition,
		Material:    p.Material,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		Status:      string(p.Status),
		CreatedAt:   p.CreatedAt,
	}
}

// InventoryRowResponse mirrors one stock report row.
type InventoryRowResponse struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Stock     int    `json:"stock"`
	Status    string `json:"status"`
}

// AdjustStockRequest applies a signed stock delta.
type AdjustStockRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Delta     int   `json:"delta" binding:"required"`
}

// SetStockRequest replaces a stock level.
type SetStockRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Stock     int   `json:"stock"`
}
