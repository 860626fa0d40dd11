package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// CartUseCase manages buyer cart contents.
type CartUseCase struct {
	carts    repository.CartRepository
	products repository.ProductRepository
}

// NewCartUseCase constructs CartUseCase.
func NewCartUseCase(carts repository.CartRepository, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

// Add merges quantity into the buyer's cart row for the product,
// creating it on first add. The product must exist and be active.
func (u *CartUseCase) Add(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, domainErrors.ErrInvalidArgument
	}

	product, err := u.products.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !product.Available() {
		return nil, domainErrors.ErrNotFound
	}

	return u.carts.Add(ctx, buyerID, productID, quantity)
}

// Remove deletes one cart row. Buyers may only touch their own rows.
func (u *CartUseCase) Remove(ctx context.Context, buyerID, itemID int64) error {
	item, err := u.carts.Get(ctx, itemID)
	if err != nil {
		return err
	}
	if item.BuyerID != buyerID {
		return domainErrors.ErrNotFound
	}
	return u.carts.Remove(ctx, itemID)
}

// Clear removes every row for the buyer; idempotent.
func (u *CartUseCase) Clear(ctx context.Context, buyerID int64) error {
	err := u.carts.Clear(ctx, buyerID)
	if errors.Is(err, domainErrors.ErrNotFound) {
		return nil
	}
	return err
}

// List returns the buyer's cart joined with current products. Lines
// whose product was deleted are omitted, not an error.
func (u *CartUseCase) List(ctx context.Context, buyerID int64) ([]model.CartLine, error) {
	return u.carts.List(ctx, buyerID)
}
