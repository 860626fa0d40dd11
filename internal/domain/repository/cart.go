package repository

import (
	"context"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// CartRepository describes persistence operations for buyer carts.
type CartRepository interface {
	// Add merges quantity into an existing (buyer, product) row or
	// creates it. The resulting row is returned.
	Add(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error)
	Get(ctx context.Context, itemID int64) (*model.CartItem, error)
	Remove(ctx context.Context, itemID int64) error
	// Clear removes every row for the buyer. Clearing an empty cart
	// is not an error.
	Clear(ctx context.Context, buyerID int64) error
	// List returns cart lines joined with their products, in insertion
	// order. Lines whose product has been deleted are omitted.
	List(ctx context.Context, buyerID int64) ([]model.CartLine, error)
}
