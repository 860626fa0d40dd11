package model

import "github.com/shopspring/decimal"

// FinanceSummary aggregates order history for a seller (or the whole
// platform). TotalSales covers revenue-bearing statuses only;
// TotalOrders excludes cancelled orders.
type FinanceSummary struct {
	TotalSales      decimal.Decimal
	TotalOrders     int
	PendingOrders   int
	CompletedOrders int
}

// SalesDimension selects the grouping key for sales breakdowns.
type SalesDimension string

const (
	SalesByBrand       SalesDimension = "brand"
	SalesByProductName SalesDimension = "productName"
)

// Valid reports whether the dimension is a known value.
func (d SalesDimension) Valid() bool {
	return d == SalesByBrand || d == SalesByProductName
}

// SalesBucket is one group of a sales breakdown, keyed by the frozen
// line snapshot's brand or product name (not the live catalog).
type SalesBucket struct {
	Key      string
	Revenue  decimal.Decimal
	Quantity int
	Orders   int
}
