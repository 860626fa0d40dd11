package test

import (
	"context"
	"time"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// UserRepositoryStub stores accounts in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers account unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, login, passwordHash, company string, role model.Role) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Users == nil {
		s.Users = make(map[string]*model.User)
	}
	if s.ByID == nil {
		s.ByID = make(map[int64]*model.User)
	}
	if _, exists := s.Users[login]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	user := &model.User{ID: s.Next, Login: login, PasswordHash: passwordHash, Company: company, Role: role}
	s.Next++
	s.Users[login] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByLogin fetches account by login or returns not found.
func (s *UserRepositoryStub) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[login]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches account by identifier or returns not found.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// ProductRepositoryStub allows tests to customize catalog behaviour.
type ProductRepositoryStub struct {
	CreateFn            func(context.Context, *model.Product) (*model.Product, error)
	GetByIDFn           func(context.Context, int64) (*model.Product, error)
	ListFn              func(context.Context, repository.ProductFilter) ([]model.Product, error)
	UpdateFn            func(context.Context, int64, model.ProductPatch) (*model.Product, error)
	DeleteFn            func(context.Context, int64) error
	AdjustStockFn       func(context.Context, int64, int) (*model.Product, error)
	SetStockFn          func(context.Context, int64, int) (*model.Product, error)
	InventorySnapshotFn func(context.Context, int64) ([]model.InventoryRow, error)
}

func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, product)
	}
	created := *product
	created.ID = 1
	return &created, nil
}

func (s *ProductRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, nil
}

func (s *ProductRepositoryStub) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	if s.UpdateFn != nil {
		return s.UpdateFn(ctx, id, patch)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) Delete(ctx context.Context, id int64) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

func (s *ProductRepositoryStub) AdjustStock(ctx context.Context, id int64, delta int) (*model.Product, error) {
	if s.AdjustStockFn != nil {
		return s.AdjustStockFn(ctx, id, delta)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) SetStock(ctx context.Context, id int64, stock int) (*model.Product, error) {
	if s.SetStockFn != nil {
		return s.SetStockFn(ctx, id, stock)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *ProductRepositoryStub) InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error) {
	if s.InventorySnapshotFn != nil {
		return s.InventorySnapshotFn(ctx, sellerID)
	}
	return nil, nil
}

// CartRepositoryStub allows tests to customize cart behaviour.
type CartRepositoryStub struct {
	AddFn    func(context.Context, int64, int64, int) (*model.CartItem, error)
	GetFn    func(context.Context, int64) (*model.CartItem, error)
	RemoveFn func(context.Context, int64) error
	ClearFn  func(context.Context, int64) error
	ListFn   func(context.Context, int64) ([]model.CartLine, error)
}

func (s *CartRepositoryStub) Add(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, buyerID, productID, quantity)
	}
	return &model.CartItem{ID: 1, BuyerID: buyerID, ProductID: productID, Quantity: quantity}, nil
}

func (s *CartRepositoryStub) Get(ctx context.Context, itemID int64) (*model.CartItem, error) {
	if s.GetFn != nil {
		return s.GetFn(ctx, itemID)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *CartRepositoryStub) Remove(ctx context.Context, itemID int64) error {
	if s.RemoveFn != nil {
		return s.RemoveFn(ctx, itemID)
	}
	return nil
}

func (s *CartRepositoryStub) Clear(ctx context.Context, buyerID int64) error {
	if s.ClearFn != nil {
		return s.ClearFn(ctx, buyerID)
	}
	return nil
}

func (s *CartRepositoryStub) List(ctx context.Context, buyerID int64) ([]model.CartLine, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, buyerID)
	}
	return nil, nil
}

// OrderRepositoryStub allows tests to customize order behaviour.
type OrderRepositoryStub struct {
	PlaceFromCartFn    func(context.Context, repository.PlacementRequest) (*model.Order, error)
	GetByIDFn          func(context.Context, int64) (*model.Order, error)
	ListFn             func(context.Context, model.OrderFilter) ([]model.Order, error)
	UpdateStatusFn     func(context.Context, int64, model.OrderStatus, bool) (*model.Order, error)
	ListStalePendingFn func(context.Context, time.Time, int) ([]model.Order, error)
}

func (s *OrderRepositoryStub) PlaceFromCart(ctx context.Context, req repository.PlacementRequest) (*model.Order, error) {
	if s.PlaceFromCartFn != nil {
		return s.PlaceFromCartFn(ctx, req)
	}
	return &model.Order{ID: 1, BuyerID: req.BuyerID, SellerID: req.SellerID, Status: model.OrderStatusPending}, nil
}

func (s *OrderRepositoryStub) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	if s.ListFn != nil {
		return s.ListFn(ctx, filter)
	}
	return nil, nil
}

func (s *OrderRepositoryStub) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, restock bool) (*model.Order, error) {
	if s.UpdateStatusFn != nil {
		return s.UpdateStatusFn(ctx, orderID, status, restock)
	}
	return nil, domainErrors.ErrNotFound
}

func (s *OrderRepositoryStub) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	if s.ListStalePendingFn != nil {
		return s.ListStalePendingFn(ctx, cutoff, limit)
	}
	return nil, nil
}

// FinanceRepositoryStub allows tests to customize aggregate reads.
type FinanceRepositoryStub struct {
	SummaryFn          func(context.Context, int64) (*model.FinanceSummary, error)
	SalesByDimensionFn func(context.Context, int64, model.SalesDimension) ([]model.SalesBucket, error)
}

func (s *FinanceRepositoryStub) Summary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error) {
	if s.SummaryFn != nil {
		return s.SummaryFn(ctx, sellerID)
	}
	return &model.FinanceSummary{}, nil
}

func (s *FinanceRepositoryStub) SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error) {
	if s.SalesByDimensionFn != nil {
		return s.SalesByDimensionFn(ctx, sellerID, dim)
	}
	return nil, nil
}

var (
	_ repository.UserRepository    = (*UserRepositoryStub)(nil)
	_ repository.ProductRepository = (*ProductRepositoryStub)(nil)
	_ repository.CartRepository    = (*CartRepositoryStub)(nil)
	_ repository.OrderRepository   = (*OrderRepositoryStub)(nil)
	_ repository.FinanceRepository = (*FinanceRepositoryStub)(nil)
)
