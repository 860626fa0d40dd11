package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	testhelpers "github.com/saxtrade/marketplace/internal/test"
)

func TestInventoryUseCaseAdjustStock(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		AdjustStockFn: func(_ context.Context, id int64, delta int) (*model.Product, error) {
			return &model.Product{ID: id, Stock: 5 + delta}, nil
		},
	}
	uc := NewInventoryUseCase(repo)

	product, err := uc.AdjustStock(context.Background(), 1, 3)
	if err != nil {
		t.Fatalf("adjust returned error: %v", err)
	}
	if product.Stock != 8 {
		t.Fatalf("unexpected stock: %d", product.Stock)
	}
}

func TestInventoryUseCaseAdjustStockZeroDelta(t *testing.T) {
	uc := NewInventoryUseCase(&testhelpers.ProductRepositoryStub{})
	if _, err := uc.AdjustStock(context.Background(), 1, 0); !errors.Is(err, domainErrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestInventoryUseCaseAdjustStockShortfall(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		AdjustStockFn: func(_ context.Context, id int64, delta int) (*model.Product, error) {
			return nil, &domainErrors.InsufficientStockError{ProductID: id, Requested: -delta, Available: 2}
		},
	}
	uc := NewInventoryUseCase(repo)

	_, err := uc.AdjustStock(context.Background(), 4, -5)
	var insufficient *domainErrors.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.ProductID != 4 || insufficient.Available != 2 {
		t.Fatalf("unexpected detail: %+v", insufficient)
	}
}

func TestInventoryUseCaseSetStock(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		SetStockFn: func(_ context.Context, id int64, stock int) (*model.Product, error) {
			return &model.Product{ID: id, Stock: stock}, nil
		},
	}
	uc := NewInventoryUseCase(repo)

	product, err := uc.SetStock(context.Background(), 2, 0)
	if err != nil {
		t.Fatalf("set returned error: %v", err)
	}
	if product.Stock != 0 {
		t.Fatalf("zero stock must be allowed, got %d", product.Stock)
	}

	if _, err := uc.SetStock(context.Background(), 2, -1); !errors.Is(err, domainErrors.ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument for negative stock, got %v", err)
	}
}

func TestInventoryUseCaseSnapshot(t *testing.T) {
	repo := &testhelpers.ProductRepositoryStub{
		InventorySnapshotFn: func(_ context.Context, sellerID int64) ([]model.InventoryRow, error) {
			return []model.InventoryRow{{ProductID: 1, Name: "Mark VI", Stock: 4, Status: model.ProductStatusActive}}, nil
		},
	}
	uc := NewInventoryUseCase(repo)

	rows, err := uc.Snapshot(context.Background(), 1)
	if err != nil {
		t.Fatalf("snapshot returned error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Mark VI" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}
