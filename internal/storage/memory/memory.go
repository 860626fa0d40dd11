package memory

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

// idAllocator hands out monotonic identifiers. Each entity kind owns
// one; callers must hold the store lock.
type idAllocator struct {
	next int64
}

func (a *idAllocator) allocate() int64 {
	a.next++
	return a.next
}

// Users returns the account repository view.
func (s *Store) Users() repository.UserRepository { return &userRepository{store: s} }

// Products returns the catalog repository view.
func (s *Store) Products() repository.ProductRepository { return &productRepository{store: s} }

// Carts returns the cart repository view.
func (s *Store) Carts() repository.CartRepository { return &cartRepository{store: s} }

// Orders returns the order repository view.
func (s *Store) Orders() repository.OrderRepository { return &orderRepository{store: s} }

// Finance returns the aggregate reader view.
func (s *Store) Finance() repository.FinanceRepository { return &financeRepository{store: s} }

type userRepository struct{ store *Store }
type productRepository struct{ store *Store }
type cartRepository struct{ store *Store }
type orderRepository struct{ store *Store }
type financeRepository struct{ store *Store }

// --- UserRepository implementation ---

func (r *userRepository) Create(ctx context.Context, login, passwordHash, company string, role model.Role) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, u := range r.store.users {
		if u.Login == login {
			return nil, domainErrors.ErrAlreadyExists
		}
	}

	user := &model.User{
		ID:           r.store.userIDs.allocate(),
		Login:        login,
		PasswordHash: passwordHash,
		Company:      company,
		Role:         role,
		CreatedAt:    r.store.now(),
	}
	r.store.users[user.ID] = user
	out := *user
	return &out, nil
}

func (r *userRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if u.Login == login {
			out := *u
			return &out, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *u
	return &out, nil
}

// --- ProductRepository implementation ---

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	stored := *product
	stored.ID = r.store.productIDs.allocate()
	stored.CreatedAt = r.store.now()
	stored.UpdatedAt = stored.CreatedAt
	if stored.Price != nil {
		price := *stored.Price
		stored.Price = &price
	}
	r.store.products[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := cloneProduct(p)
	return &out, nil
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []model.Product
	for _, p := range r.store.products {
		if !matchesFilter(p, filter) {
			continue
		}
		result = append(result, cloneProduct(p))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func matchesFilter(p *model.Product, f repository.ProductFilter) bool {
	if f.SellerID != 0 && p.SellerID != f.SellerID {
		return false
	}
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Brand != "" && p.Brand != f.Brand {
		return false
	}
	if f.Status != "" && p.Status != f.Status {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

func (r *productRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	patch.Apply(p)
	p.UpdatedAt = r.store.now()
	out := cloneProduct(p)
	return &out, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.products[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.store.products, id)
	return nil
}

func (r *productRepository) AdjustStock(ctx context.Context, id int64, delta int) (*model.Product, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if p.Stock+delta < 0 {
		return nil, &domainErrors.InsufficientStockError{
			ProductID: p.ID,
			Name:      p.Name,
			Requested: -delta,
			Available: p.Stock,
		}
	}
	p.Stock += delta
	p.UpdatedAt = r.store.now()
	out := cloneProduct(p)
	return &out, nil
}

func (r *productRepository) SetStock(ctx context.Context, id int64, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, domainErrors.ErrInvalidArgument
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p, ok := r.store.products[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	p.Stock = stock
	p.UpdatedAt = r.store.now()
	out := cloneProduct(p)
	return &out, nil
}

func (r *productRepository) InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var rows []model.InventoryRow
	for _, p := range r.store.products {
		if sellerID != 0 && p.SellerID != sellerID {
			continue
		}
		rows = append(rows, model.InventoryRow{
			ProductID: p.ID,
			Name:      p.Name,
			Stock:     p.Stock,
			Status:    p.Status,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ProductID < rows[j].ProductID })
	return rows, nil
}

// --- CartRepository implementation ---

func (r *cartRepository) Add(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, item := range r.store.cartItems {
		if item.BuyerID == buyerID && item.ProductID == productID {
			item.Quantity += quantity
			item.UpdatedAt = r.store.now()
			out := *item
			return &out, nil
		}
	}

	item := &model.CartItem{
		ID:        r.store.cartIDs.allocate(),
		BuyerID:   buyerID,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: r.store.now(),
	}
	item.UpdatedAt = item.CreatedAt
	r.store.cartItems[item.ID] = item
	out := *item
	return &out, nil
}

func (r *cartRepository) Get(ctx context.Context, itemID int64) (*model.CartItem, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.cartItems[itemID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := *item
	return &out, nil
}

func (r *cartRepository) Remove(ctx context.Context, itemID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.cartItems[itemID]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(r.store.cartItems, itemID)
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, buyerID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.clearCartLocked(buyerID)
	return nil
}

func (r *cartRepository) List(ctx context.Context, buyerID int64) ([]model.CartLine, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.cartLinesLocked(buyerID), nil
}

// cartLinesLocked joins cart rows with products in insertion order.
// Rows whose product is gone are skipped. Caller holds the lock.
func (s *Store) cartLinesLocked(buyerID int64) []model.CartLine {
	var items []*model.CartItem
	for _, item := range s.cartItems {
		if item.BuyerID == buyerID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	var lines []model.CartLine
	for _, item := range items {
		product, ok := s.products[item.ProductID]
		if !ok {
			continue
		}
		lines = append(lines, model.CartLine{Item: *item, Product: cloneProduct(product)})
	}
	return lines
}

func (s *Store) clearCartLocked(buyerID int64) {
	for id, item := range s.cartItems {
		if item.BuyerID == buyerID {
			delete(s.cartItems, id)
		}
	}
}

// --- OrderRepository implementation ---

// PlaceFromCart runs the whole checkout under the store lock: every
// concurrent placement or stock edit observes either none or all of
// its effects.
func (r *orderRepository) PlaceFromCart(ctx context.Context, req repository.PlacementRequest) (*model.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var items []*model.CartItem
	for _, item := range r.store.cartItems {
		if item.BuyerID == req.BuyerID {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return nil, domainErrors.ErrEmptyCart
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	// All-or-nothing validation before any mutation.
	for _, item := range items {
		product, ok := r.store.products[item.ProductID]
		if !ok || !product.Available() {
			return nil, &domainErrors.ProductUnavailableError{ProductID: item.ProductID}
		}
		if product.Stock < item.Quantity {
			return nil, &domainErrors.InsufficientStockError{
				ProductID: product.ID,
				Name:      product.Name,
				Requested: item.Quantity,
				Available: product.Stock,
			}
		}
	}

	now := r.store.now()
	lines := make([]model.OrderItem, 0, len(items))
	for _, item := range items {
		product := r.store.products[item.ProductID]
		product.Stock -= item.Quantity
		product.UpdatedAt = now
		lines = append(lines, model.OrderItem{
			ProductID: product.ID,
			Name:      product.Name,
			Brand:     product.Brand,
			Price:     product.UnitPrice(),
			Quantity:  item.Quantity,
		})
	}

	id := r.store.orderIDs.allocate()
	order := &model.Order{
		ID:              id,
		Number:          model.OrderNumber(now, id),
		BuyerID:         req.BuyerID,
		SellerID:        req.SellerID,
		Items:           lines,
		TotalAmount:     model.SumItems(lines),
		Status:          model.OrderStatusPending,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: req.ShippingAddress,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.store.orders[order.ID] = order
	r.store.clearCartLocked(req.BuyerID)

	out := cloneOrder(order)
	return &out, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	order, ok := r.store.orders[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	out := cloneOrder(order)
	return &out, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []model.Order
	for _, order := range r.store.orders {
		if filter.BuyerID != 0 && order.BuyerID != filter.BuyerID {
			continue
		}
		if filter.SellerID != 0 && order.SellerID != filter.SellerID {
			continue
		}
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		result = append(result, cloneOrder(order))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID > result[j].ID })
	return result, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, restock bool) (*model.Order, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	order, ok := r.store.orders[orderID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if !order.Status.CanTransitionTo(status) {
		return nil, &domainErrors.InvalidTransitionError{From: order.Status, To: status}
	}

	order.Status = status
	order.UpdatedAt = r.store.now()

	if restock && status == model.OrderStatusCancelled {
		for _, line := range order.Items {
			if product, ok := r.store.products[line.ProductID]; ok {
				product.Stock += line.Quantity
				product.UpdatedAt = order.UpdatedAt
			}
		}
	}

	out := cloneOrder(order)
	return &out, nil
}

func (r *orderRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []model.Order
	for _, order := range r.store.orders {
		if order.Status != model.OrderStatusPending || !order.CreatedAt.Before(cutoff) {
			continue
		}
		result = append(result, cloneOrder(order))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

// --- FinanceRepository implementation ---

func (r *financeRepository) Summary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	summary := &model.FinanceSummary{TotalSales: decimal.Zero}
	for _, order := range r.store.orders {
		if sellerID != 0 && order.SellerID != sellerID {
			continue
		}
		switch {
		case order.Status == model.OrderStatusCancelled:
			continue
		case order.Status == model.OrderStatusPending:
			summary.PendingOrders++
		case order.Status == model.OrderStatusCompleted:
			summary.CompletedOrders++
		}
		summary.TotalOrders++
		if order.Status.RevenueBearing() {
			summary.TotalSales = summary.TotalSales.Add(order.TotalAmount)
		}
	}
	return summary, nil
}

func (r *financeRepository) SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	buckets := make(map[string]*model.SalesBucket)
	for _, order := range r.store.orders {
		if sellerID != 0 && order.SellerID != sellerID {
			continue
		}
		if !order.Status.RevenueBearing() {
			continue
		}
		seen := make(map[string]bool)
		for _, line := range order.Items {
			key := line.Name
			if dim == model.SalesByBrand {
				key = line.Brand
			}
			bucket, ok := buckets[key]
			if !ok {
				bucket = &model.SalesBucket{Key: key, Revenue: decimal.Zero}
				buckets[key] = bucket
			}
			bucket.Revenue = bucket.Revenue.Add(line.Subtotal())
			bucket.Quantity += line.Quantity
			if !seen[key] {
				bucket.Orders++
				seen[key] = true
			}
		}
	}

	result := make([]model.SalesBucket, 0, len(buckets))
	for _, bucket := range buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })
	return result, nil
}
