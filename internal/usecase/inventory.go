package usecase

import (
	"context"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// InventoryUseCase manages stock levels. Stock never goes negative.
type InventoryUseCase struct {
	products repository.ProductRepository
}

// NewInventoryUseCase constructs InventoryUseCase.
func NewInventoryUseCase(products repository.ProductRepository) *InventoryUseCase {
	return &InventoryUseCase{products: products}
}

// AdjustStock applies a signed delta. Restocks pass a positive delta;
// order placement decrements through the same repository guard.
func (u *InventoryUseCase) AdjustStock(ctx context.Context, productID int64, delta int) (*model.Product, error) {
	if delta == 0 {
		return nil, domainErrors.ErrInvalidArgument
	}
	return u.products.AdjustStock(ctx, productID, delta)
}

// SetStock replaces the stock level with an absolute value.
func (u *InventoryUseCase) SetStock(ctx context.Context, productID int64, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, domainErrors.ErrInvalidArgument
	}
	return u.products.SetStock(ctx, productID, stock)
}

// Snapshot returns a read-only stock report, optionally scoped to
// one seller.
func (u *InventoryUseCase) Snapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error) {
	return u.products.InventorySnapshot(ctx, sellerID)
}
