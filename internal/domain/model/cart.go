package model

import "time"

// CartItem holds the quantity of one product in a buyer's cart.
// The (BuyerID, ProductID) pair is unique; repeated adds merge
// by incrementing Quantity.
type CartItem struct {
	ID        int64
	BuyerID   int64
	ProductID int64
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartLine joins a cart item with its resolved product. Listing a
// cart omits lines whose product has been deleted since the add.
type CartLine struct {
	Item    CartItem
	Product Product
}
