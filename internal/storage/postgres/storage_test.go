package postgres

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

func newMockStorage(t *testing.T) (*Storage, pgxmockv3.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmockv3.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	storage := &Storage{pool: mock, logger: logger}
	return storage, mock
}

func expectSchema(mock pgxmockv3.PgxPoolIface) {
	tableStatements := []string{
		"CREATE TABLE IF NOT EXISTS users",
		"CREATE TABLE IF NOT EXISTS products",
		"CREATE TABLE IF NOT EXISTS cart_items",
		"CREATE TABLE IF NOT EXISTS orders",
		"CREATE TABLE IF NOT EXISTS order_items",
	}
	for _, stmt := range tableStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
	indexStatements := []string{
		"CREATE INDEX IF NOT EXISTS idx_cart_items_buyer",
		"CREATE INDEX IF NOT EXISTS idx_orders_buyer",
		"CREATE INDEX IF NOT EXISTS idx_orders_seller",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order",
	}
	for _, stmt := range indexStatements {
		mock.ExpectExec(stmt).WillReturnResult(pgxmockv3.NewResult("CREATE", 0))
	}
}

func TestInitSchema(t *testing.T) {
	storage, mock := newMockStorage(t)
	expectSchema(mock)

	if err := storage.initSchema(context.Background()); err != nil {
		t.Fatalf("init schema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestInitSchemaError(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("boom"))

	if err := storage.initSchema(context.Background()); err == nil {
		t.Fatal("expected schema error")
	}
}

func TestCentsConversions(t *testing.T) {
	if got := centsToDecimal(30); !got.Equal(decimal.RequireFromString("0.30")) {
		t.Fatalf("unexpected decimal: %s", got)
	}
	if got := decimalToCents(decimal.RequireFromString("2500.00")); got != 250000 {
		t.Fatalf("unexpected cents: %d", got)
	}
	if got := decimalToCents(decimal.RequireFromString("0.10").Add(decimal.RequireFromString("0.20"))); got != 30 {
		t.Fatalf("exact addition must survive the boundary: %d", got)
	}
	if priceToCents(nil) != nil {
		t.Fatal("nil price must map to NULL")
	}
	if centsToPrice(nil) != nil {
		t.Fatal("NULL price must map to nil")
	}
}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", "Alto Imports", "seller").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), now))

	user, err := storage.Users().Create(context.Background(), "alice", "hash", "Alto Imports", model.RoleSeller)
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if user.ID != 1 || user.Role != model.RoleSeller {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("alice", "hash", "Alto Imports", "seller").
		WillReturnError(&pgconn.PgError{Code: "23505"})

	_, err := storage.Users().Create(context.Background(), "alice", "hash", "Alto Imports", model.RoleSeller)
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryGetByLoginNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT id, login, password_hash, company, role, created_at FROM users").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	if _, err := storage.Users().GetByLogin(context.Background(), "ghost"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func productRow(id int64, name, brand string, priceCents *int64, stock int, status string, now time.Time) *pgxmockv3.Rows {
	return pgxmockv3.NewRows([]string{
		"id", "seller_id", "name", "brand", "category", "model", "year", "condition",
		"material", "description", "price_cents", "stock", "status", "created_at", "updated_at",
	}).AddRow(id, int64(1), name, brand, "Tenor", "", 0, "", "", "", priceCents, stock, status, now, now)
}

func TestProductRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	cents := int64(250000)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id=").
		WithArgs(int64(5)).
		WillReturnRows(productRow(5, "Mark VI", "Selmer", &cents, 3, "active", now))

	product, err := storage.Products().GetByID(context.Background(), 5)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.ID != 5 || product.Category != model.CategoryTenor {
		t.Fatalf("unexpected product: %+v", product)
	}
	if product.Price == nil || !product.Price.Equal(decimal.RequireFromString("2500.00")) {
		t.Fatalf("unexpected price: %v", product.Price)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductRepositoryGetByIDNilPrice(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM products WHERE id=").
		WithArgs(int64(6)).
		WillReturnRows(productRow(6, "Prototype", "Selmer", nil, 1, "active", now))

	product, err := storage.Products().GetByID(context.Background(), 6)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	if product.Price != nil {
		t.Fatalf("NULL price must become quote-on-request, got %v", product.Price)
	}
}

func TestProductRepositoryListWithFilter(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	cents := int64(110000)

	mock.ExpectQuery("SELECT (.+) FROM products WHERE 1=1 AND brand=").
		WithArgs("Yamaha").
		WillReturnRows(productRow(2, "YAS-62", "Yamaha", &cents, 4, "active", now))

	products, err := storage.Products().List(context.Background(), repository.ProductFilter{Brand: "Yamaha"})
	if err != nil {
		t.Fatalf("list products: %v", err)
	}
	if len(products) != 1 || products[0].Brand != "Yamaha" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestProductRepositoryDeleteNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec("DELETE FROM products WHERE id=").
		WithArgs(int64(404)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))

	if err := storage.Products().Delete(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProductRepositoryAdjustStockShortfall(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	cents := int64(250000)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM products WHERE id=(.+) FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(productRow(5, "Mark VI", "Selmer", &cents, 2, "active", now))
	mock.ExpectRollback()

	_, err := storage.Products().AdjustStock(context.Background(), 5, -3)
	var insufficient *domainErrors.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Available != 2 || insufficient.Requested != 3 {
		t.Fatalf("unexpected shortfall: %+v", insufficient)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestProductRepositoryAdjustStock(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	cents := int64(250000)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM products WHERE id=(.+) FOR UPDATE").
		WithArgs(int64(5)).
		WillReturnRows(productRow(5, "Mark VI", "Selmer", &cents, 2, "active", now))
	mock.ExpectExec("UPDATE products SET stock=stock").
		WithArgs(3, int64(5)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectCommit()

	product, err := storage.Products().AdjustStock(context.Background(), 5, 3)
	if err != nil {
		t.Fatalf("adjust stock: %v", err)
	}
	if product.Stock != 5 {
		t.Fatalf("unexpected stock: %d", product.Stock)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCartRepositoryAddUpsert(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("INSERT INTO cart_items").
		WithArgs(int64(7), int64(3), 2).
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "quantity", "created_at", "updated_at"}).
			AddRow(int64(11), 5, now, now))

	item, err := storage.Carts().Add(context.Background(), 7, 3, 2)
	if err != nil {
		t.Fatalf("add to cart: %v", err)
	}
	if item.ID != 11 || item.Quantity != 5 {
		t.Fatalf("unexpected item: %+v", item)
	}
}

func TestCartRepositoryRemoveNotFound(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectExec("DELETE FROM cart_items WHERE id=").
		WithArgs(int64(404)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 0))

	if err := storage.Carts().Remove(context.Background(), 404); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestOrderRepositoryPlaceFromCart(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	cents := int64(10000)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT product_id, quantity FROM cart_items").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"product_id", "quantity"}).AddRow(int64(3), 3))
	mock.ExpectQuery("SELECT name, brand, price_cents, stock, status FROM products").
		WithArgs(int64(3)).
		WillReturnRows(pgxmockv3.NewRows([]string{"name", "brand", "price_cents", "stock", "status"}).
			AddRow("Mark VI", "Selmer", &cents, 10, "active"))
	mock.ExpectExec("UPDATE products SET stock=stock").
		WithArgs(3, int64(3)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(int64(7), int64(1), int64(30000), "pending", "invoice", "12 Reed St").
		WillReturnRows(pgxmockv3.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(9), now, now))
	mock.ExpectExec("UPDATE orders SET number=").
		WithArgs(model.OrderNumber(now, 9), int64(9)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO order_items").
		WithArgs(int64(9), int64(3), "Mark VI", "Selmer", int64(10000), 3).
		WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectExec("DELETE FROM cart_items WHERE buyer_id=").
		WithArgs(int64(7)).
		WillReturnResult(pgxmockv3.NewResult("DELETE", 1))
	mock.ExpectCommit()

	order, err := storage.Orders().PlaceFromCart(context.Background(), repository.PlacementRequest{
		BuyerID:         7,
		SellerID:        1,
		PaymentMethod:   "invoice",
		ShippingAddress: "12 Reed St",
	})
	if err != nil {
		t.Fatalf("place from cart: %v", err)
	}
	if order.ID != 9 || order.Status != model.OrderStatusPending {
		t.Fatalf("unexpected order: %+v", order)
	}
	if !order.TotalAmount.Equal(decimal.RequireFromString("300.00")) {
		t.Fatalf("unexpected total: %s", order.TotalAmount)
	}
	if order.Number != model.OrderNumber(now, 9) {
		t.Fatalf("unexpected number: %s", order.Number)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryPlaceFromCartEmpty(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT product_id, quantity FROM cart_items").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"product_id", "quantity"}))
	mock.ExpectRollback()

	_, err := storage.Orders().PlaceFromCart(context.Background(), repository.PlacementRequest{BuyerID: 7, SellerID: 1, PaymentMethod: "invoice", ShippingAddress: "addr"})
	if !errors.Is(err, domainErrors.ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryPlaceFromCartInsufficientStockRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	cents := int64(10000)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT product_id, quantity FROM cart_items").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"product_id", "quantity"}).AddRow(int64(3), 5))
	mock.ExpectQuery("SELECT name, brand, price_cents, stock, status FROM products").
		WithArgs(int64(3)).
		WillReturnRows(pgxmockv3.NewRows([]string{"name", "brand", "price_cents", "stock", "status"}).
			AddRow("Mark VI", "Selmer", &cents, 1, "active"))
	mock.ExpectRollback()

	_, err := storage.Orders().PlaceFromCart(context.Background(), repository.PlacementRequest{BuyerID: 7, SellerID: 1, PaymentMethod: "invoice", ShippingAddress: "addr"})
	var insufficient *domainErrors.InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if insufficient.Requested != 5 || insufficient.Available != 1 {
		t.Fatalf("unexpected shortfall: %+v", insufficient)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryPlaceFromCartUnavailable(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT product_id, quantity FROM cart_items").
		WithArgs(int64(7)).
		WillReturnRows(pgxmockv3.NewRows([]string{"product_id", "quantity"}).AddRow(int64(3), 1))
	mock.ExpectQuery("SELECT name, brand, price_cents, stock, status FROM products").
		WithArgs(int64(3)).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := storage.Orders().PlaceFromCart(context.Background(), repository.PlacementRequest{BuyerID: 7, SellerID: 1, PaymentMethod: "invoice", ShippingAddress: "addr"})
	var unavailable *domainErrors.ProductUnavailableError
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ProductUnavailableError, got %v", err)
	}
	if unavailable.ProductID != 3 {
		t.Fatalf("unexpected product: %+v", unavailable)
	}
}

func orderRow(id int64, number string, totalCents int64, status string, now time.Time) *pgxmockv3.Rows {
	return pgxmockv3.NewRows([]string{
		"id", "number", "buyer_id", "seller_id", "total_cents", "status",
		"payment_method", "shipping_address", "created_at", "updated_at",
	}).AddRow(id, &number, int64(7), int64(1), totalCents, status, "invoice", "12 Reed St", now, now)
}

func TestOrderRepositoryGetByID(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=").
		WithArgs(int64(9)).
		WillReturnRows(orderRow(9, "SAX-20260314150926-000009", 30000, "pending", now))
	mock.ExpectQuery("SELECT product_id, name, brand, price_cents, quantity FROM order_items").
		WithArgs(int64(9)).
		WillReturnRows(pgxmockv3.NewRows([]string{"product_id", "name", "brand", "price_cents", "quantity"}).
			AddRow(int64(3), "Mark VI", "Selmer", int64(10000), 3))

	order, err := storage.Orders().GetByID(context.Background(), 9)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if order.Number != "SAX-20260314150926-000009" {
		t.Fatalf("unexpected number: %s", order.Number)
	}
	if len(order.Items) != 1 || !order.Items[0].Price.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("unexpected items: %+v", order.Items)
	}
}

func TestOrderRepositoryUpdateStatusInvalidEdge(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=(.+) FOR UPDATE").
		WithArgs(int64(9)).
		WillReturnRows(orderRow(9, "SAX-1", 30000, "completed", now))
	mock.ExpectRollback()

	_, err := storage.Orders().UpdateStatus(context.Background(), 9, model.OrderStatusPaid, false)
	var invalid *domainErrors.InvalidTransitionError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidTransitionError, got %v", err)
	}
	if invalid.From != model.OrderStatusCompleted || invalid.To != model.OrderStatusPaid {
		t.Fatalf("unexpected edge: %+v", invalid)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryUpdateStatusCancelWithRestock(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM orders WHERE id=(.+) FOR UPDATE").
		WithArgs(int64(9)).
		WillReturnRows(orderRow(9, "SAX-1", 30000, "pending", now))
	mock.ExpectExec("UPDATE orders SET status=").
		WithArgs("cancelled", int64(9)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE products p").
		WithArgs(int64(9)).
		WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT product_id, name, brand, price_cents, quantity FROM order_items").
		WithArgs(int64(9)).
		WillReturnRows(pgxmockv3.NewRows([]string{"product_id", "name", "brand", "price_cents", "quantity"}).
			AddRow(int64(3), "Mark VI", "Selmer", int64(10000), 3))
	mock.ExpectCommit()

	order, err := storage.Orders().UpdateStatus(context.Background(), 9, model.OrderStatusCancelled, true)
	if err != nil {
		t.Fatalf("cancel with restock: %v", err)
	}
	if order.Status != model.OrderStatusCancelled {
		t.Fatalf("unexpected status: %s", order.Status)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestOrderRepositoryListStalePending(t *testing.T) {
	storage, mock := newMockStorage(t)
	now := time.Now()
	cutoff := now.Add(-time.Hour)

	mock.ExpectQuery("SELECT (.+) FROM orders WHERE status=").
		WithArgs("pending", cutoff, 10).
		WillReturnRows(orderRow(9, "SAX-1", 30000, "pending", now.Add(-2*time.Hour)))

	orders, err := storage.Orders().ListStalePending(context.Background(), cutoff, 10)
	if err != nil {
		t.Fatalf("list stale pending: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 9 {
		t.Fatalf("unexpected orders: %+v", orders)
	}
}

func TestFinanceRepositorySummary(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"sales", "total", "pending", "completed"}).
			AddRow(int64(420050), 3, 1, 1))

	summary, err := storage.Finance().Summary(context.Background(), 1)
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if !summary.TotalSales.Equal(decimal.RequireFromString("4200.50")) {
		t.Fatalf("unexpected sales: %s", summary.TotalSales)
	}
	if summary.TotalOrders != 3 || summary.PendingOrders != 1 || summary.CompletedOrders != 1 {
		t.Fatalf("unexpected counts: %+v", summary)
	}
}

func TestFinanceRepositorySalesByBrand(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT oi.brand").
		WithArgs(int64(1)).
		WillReturnRows(pgxmockv3.NewRows([]string{"key", "revenue", "quantity", "orders"}).
			AddRow("Selmer", int64(20000), 2, 1).
			AddRow("Yamaha", int64(5000), 1, 1))

	buckets, err := storage.Finance().SalesByDimension(context.Background(), 1, model.SalesByBrand)
	if err != nil {
		t.Fatalf("sales by brand: %v", err)
	}
	if len(buckets) != 2 || buckets[0].Key != "Selmer" {
		t.Fatalf("unexpected buckets: %+v", buckets)
	}
	if !buckets[0].Revenue.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("unexpected revenue: %s", buckets[0].Revenue)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFinanceRepositorySalesByName(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectQuery("SELECT oi.name").
		WithArgs(int64(0)).
		WillReturnRows(pgxmockv3.NewRows([]string{"key", "revenue", "quantity", "orders"}).
			AddRow("Mark VI", int64(20000), 2, 1))

	buckets, err := storage.Finance().SalesByDimension(context.Background(), 0, model.SalesByProductName)
	if err != nil {
		t.Fatalf("sales by name: %v", err)
	}
	if len(buckets) != 1 || buckets[0].Key != "Mark VI" {
		t.Fatalf("unexpected buckets: %+v", buckets)
	}
}

func TestHealthCheck(t *testing.T) {
	storage, mock := newMockStorage(t)
	mock.ExpectPing()

	if err := storage.HealthCheck(context.Background()); err != nil {
		t.Fatalf("health check: %v", err)
	}
}

func TestWithinTransactionRollsBackOnError(t *testing.T) {
	storage, mock := newMockStorage(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := storage.WithinTransaction(context.Background(), func(tx pgx.Tx) error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected callback error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
