package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies instruments offered on the platform.
type Category string

const (
	CategoryAlto     Category = "Alto"
	CategoryTenor    Category = "Tenor"
	CategorySoprano  Category = "Soprano"
	CategoryBaritone Category = "Baritone"
)

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	switch c {
	case CategoryAlto, CategoryTenor, CategorySoprano, CategoryBaritone:
		return true
	}
	return false
}

// ProductStatus describes listing visibility.
type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusInactive ProductStatus = "inactive"
)

// Valid reports whether the status is a known value.
func (s ProductStatus) Valid() bool {
	return s == ProductStatusActive || s == ProductStatusInactive
}

// Product is a seller-owned catalog listing. A nil Price means
// "quote on request"; such items contribute zero to order totals.
type Product struct {
	ID          int64
	SellerID    int64
	Name        string
	Brand       string
	Category    Category
	Model       string
	Year        int
	Condition   string
	Material    string
	Description string
	Price       *decimal.Decimal
	Stock       int
	Status      ProductStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// UnitPrice returns the effective price used for order totals.
func (p *Product) UnitPrice() decimal.Decimal {
	if p.Price == nil {
		return decimal.Zero
	}
	return *p.Price
}

// Available reports whether the product can be ordered at all.
func (p *Product) Available() bool {
	return p.Status == ProductStatusActive
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched by Apply; non-nil fields overwrite unconditionally.
type ProductPatch struct {
	Name        *string
	Brand       *string
	Category    *Category
	Model       *string
	Year        *int
	Condition   *string
	Material    *string
	Description *string
	Price       *decimal.Decimal
	ClearPrice  bool
	Status      *ProductStatus
}

// Apply merges the patch into the product. Stock is deliberately not
// part of the patch; stock changes go through inventory operations.
func (pp ProductPatch) Apply(p *Product) {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Brand != nil {
		p.Brand = *pp.Brand
	}
	if pp.Category != nil {
		p.Category = *pp.Category
	}
	if pp.Model != nil {
		p.Model = *pp.Model
	}
	if pp.Year != nil {
		p.Year = *pp.Year
	}
	if pp.Condition != nil {
		p.Condition = *pp.Condition
	}
	if pp.Material != nil {
		p.Material = *pp.Material
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.ClearPrice {
		p.Price = nil
	} else if pp.Price != nil {
		price := *pp.Price
		p.Price = &price
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
}

// InventoryRow is a read-only reporting view over product stock.
type InventoryRow struct {
	ProductID int64
	Name      string
	Stock     int
	Status    ProductStatus
}
