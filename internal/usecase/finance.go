package usecase

import (
	"context"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// FinanceUseCase exposes read-only aggregates over order history.
// It never mutates state and never caches: every call scans the
// latest committed orders.
type FinanceUseCase struct {
	finance repository.FinanceRepository
}

// NewFinanceUseCase constructs FinanceUseCase.
func NewFinanceUseCase(finance repository.FinanceRepository) *FinanceUseCase {
	return &FinanceUseCase{finance: finance}
}

// Summary aggregates sales and order counts, optionally filtered to
// one seller (sellerID == 0 means platform-wide).
func (u *FinanceUseCase) Summary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error) {
	return u.finance.Summary(ctx, sellerID)
}

// SalesByDimension breaks revenue down by snapshot brand or product
// name across revenue-bearing orders.
func (u *FinanceUseCase) SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error) {
	if !dim.Valid() {
		return nil, domainErrors.ErrInvalidArgument
	}
	return u.finance.SalesByDimension(ctx, sellerID, dim)
}
