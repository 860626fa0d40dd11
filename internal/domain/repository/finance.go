package repository

import (
	"context"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// FinanceRepository derives aggregates from order history. Pure reads;
// results always reflect the latest committed order writes.
type FinanceRepository interface {
	// Summary aggregates orders, optionally filtered to one seller
	// (sellerID == 0 means platform-wide).
	Summary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error)
	// SalesByDimension groups revenue-bearing order lines by the
	// frozen snapshot's brand or product name.
	SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error)
}
