package dto

import (
	"github.com/shopspring/decimal"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// FinanceSummaryResponse aggregates a seller's order history.
type FinanceSummaryResponse struct {
	TotalSales      decimal.Decimal `json:"total_sales"`
	TotalOrders     int             `json:"total_orders"`
	PendingOrders   int             `json:"pending_orders"`
	CompletedOrders int             `json:"completed_orders"`
}

// NewFinanceSummaryResponse maps a domain summary.
func NewFinanceSummaryResponse(s model.FinanceSummary) FinanceSummaryResponse {
	return FinanceSummaryResponse{
		TotalSales:      s.TotalSales,
		TotalOrders:     s.TotalOrders,
		PendingOrders:   s.PendingOrders,
		CompletedOrders: s.CompletedOrders,
	}
}

// SalesBucketResponse is one group of a sales breakdown.
type SalesBucketResponse struct {
	Key      string          `json:"key"`
	Revenue  decimal.Decimal `json:"revenue"`
	Quantity int             `json:"quantity"`
	Orders   int             `json:"orders"`
}
