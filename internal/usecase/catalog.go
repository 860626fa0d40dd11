package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// CatalogUseCase manages product listings.
type CatalogUseCase struct {
	products repository.ProductRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products}
}

// CreateProduct validates and persists a new listing.
func (u *CatalogUseCase) CreateProduct(ctx context.Context, product *model.Product) (*model.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	if product.Name == "" || product.Brand == "" {
		return nil, domainErrors.ErrInvalidArgument
	}
	if !product.Category.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	if product.Price != nil && product.Price.IsNegative() {
		return nil, domainErrors.ErrInvalidArgument
	}
	if product.Stock < 0 {
		return nil, domainErrors.ErrInvalidArgument
	}
	if product.Status == "" {
		product.Status = model.ProductStatusActive
	}
	if !product.Status.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	return u.products.Create(ctx, product)
}

// GetProduct fetches one listing.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// ListProducts returns listings matching the filter.
func (u *CatalogUseCase) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if filter.Category != "" && !filter.Category.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	return u.products.List(ctx, filter)
}

// UpdateProduct applies a partial update. Orders placed earlier keep
// their frozen snapshots regardless.
func (u *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	if patch.Category != nil && !patch.Category.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	if patch.Price != nil && patch.Price.IsNegative() {
		return nil, domainErrors.ErrInvalidArgument
	}
	return u.products.Update(ctx, id, patch)
}

// DeleteProduct removes a listing. Existing orders keep their
// snapshots; cart lines referencing it silently disappear from
// listings and fail checkout.
func (u *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	return u.products.Delete(ctx, id)
}
