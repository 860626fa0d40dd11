package repository

import (
	"context"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// ProductFilter narrows catalog listings. Zero fields match everything.
type ProductFilter struct {
	SellerID int64
	Category model.Category
	Brand    string
	Status   model.ProductStatus
	Search   string
}

// ProductRepository describes persistence operations for catalog
// listings and their stock.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) (*model.Product, error)
	GetByID(ctx context.Context, id int64) (*model.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]model.Product, error)
	Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error)
	Delete(ctx context.Context, id int64) error

	// AdjustStock applies delta atomically and fails with
	// InsufficientStockError if the result would go negative.
	AdjustStock(ctx context.Context, id int64, delta int) (*model.Product, error)
	SetStock(ctx context.Context, id int64, stock int) (*model.Product, error)
	InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error)
}
