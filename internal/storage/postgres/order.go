package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

const orderColumns = `id, number, buyer_id, seller_id, total_cents, status, payment_method, shipping_address, created_at, updated_at`

type cartSnapshotLine struct {
	productID int64
	quantity  int
}

// PlaceFromCart performs the whole checkout in one transaction:
// validate every cart line against live stock, decrement stock,
// capture frozen line snapshots, persist the order, clear the cart.
// Product rows are locked for the duration so concurrent placements
// of overlapping products serialize on the stock check.
func (r *orderRepository) PlaceFromCart(ctx context.Context, req repository.PlacementRequest) (*model.Order, error) {
	var order *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const cartQuery = `SELECT product_id, quantity FROM cart_items WHERE buyer_id=$1 ORDER BY id`
		rows, err := tx.Query(ctx, cartQuery, req.BuyerID)
		if err != nil {
			return err
		}

		var cart []cartSnapshotLine
		for rows.Next() {
			var line cartSnapshotLine
			if err := rows.Scan(&line.productID, &line.quantity); err != nil {
				rows.Close()
				return err
			}
			cart = append(cart, line)
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return err
		}
		if len(cart) == 0 {
			return domainErrors.ErrEmptyCart
		}

		// Lock and validate every product before any mutation.
		const productQuery = `SELECT name, brand, price_cents, stock, status FROM products WHERE id=$1 FOR UPDATE`
		items := make([]model.OrderItem, 0, len(cart))
		for _, line := range cart {
			var name, brand, status string
			var priceCents *int64
			var stock int
			err := tx.QueryRow(ctx, productQuery, line.productID).Scan(&name, &brand, &priceCents, &stock, &status)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return &domainErrors.ProductUnavailableError{ProductID: line.productID}
				}
				return err
			}
			if model.ProductStatus(status) != model.ProductStatusActive {
				return &domainErrors.ProductUnavailableError{ProductID: line.productID}
			}
			if stock < line.quantity {
				return &domainErrors.InsufficientStockError{
					ProductID: line.productID,
					Name:      name,
					Requested: line.quantity,
					Available: stock,
				}
			}

			price := centsToPrice(priceCents)
			item := model.OrderItem{
				ProductID: line.productID,
				Name:      name,
				Brand:     brand,
				Quantity:  line.quantity,
			}
			if price != nil {
				item.Price = *price
			}
			items = append(items, item)
		}

		for _, line := range cart {
			const decrement = `UPDATE products SET stock=stock-$1, updated_at=NOW() WHERE id=$2`
			if _, err := tx.Exec(ctx, decrement, line.quantity, line.productID); err != nil {
				return err
			}
		}

		total := model.SumItems(items)
		const insertOrder = `INSERT INTO orders (buyer_id, seller_id, total_cents, status, payment_method, shipping_address)
                             VALUES ($1, $2, $3, $4, $5, $6)
                             RETURNING id, created_at, updated_at`
		created := &model.Order{
			BuyerID:         req.BuyerID,
			SellerID:        req.SellerID,
			Items:           items,
			TotalAmount:     total,
			Status:          model.OrderStatusPending,
			PaymentMethod:   req.PaymentMethod,
			ShippingAddress: req.ShippingAddress,
		}
		err = tx.QueryRow(ctx, insertOrder,
			req.BuyerID, req.SellerID, decimalToCents(total), string(model.OrderStatusPending),
			req.PaymentMethod, req.ShippingAddress,
		).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
		if err != nil {
			return err
		}

		created.Number = model.OrderNumber(created.CreatedAt, created.ID)
		const setNumber = `UPDATE orders SET number=$1 WHERE id=$2`
		if _, err := tx.Exec(ctx, setNumber, created.Number, created.ID); err != nil {
			return err
		}

		const insertItem = `INSERT INTO order_items (order_id, product_id, name, brand, price_cents, quantity)
                            VALUES ($1, $2, $3, $4, $5, $6)`
		for _, item := range items {
			if _, err := tx.Exec(ctx, insertItem,
				created.ID, item.ProductID, item.Name, item.Brand,
				decimalToCents(item.Price), item.Quantity); err != nil {
				return err
			}
		}

		const clearCart = `DELETE FROM cart_items WHERE buyer_id=$1`
		if _, err := tx.Exec(ctx, clearCart, req.BuyerID); err != nil {
			return err
		}

		order = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func scanOrder(row rowScanner) (*model.Order, error) {
	var o model.Order
	var number *string
	var status string
	var totalCents int64
	err := row.Scan(&o.ID, &number, &o.BuyerID, &o.SellerID, &totalCents, &status,
		&o.PaymentMethod, &o.ShippingAddress, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if number != nil {
		o.Number = *number
	}
	o.Status = model.OrderStatus(status)
	o.TotalAmount = centsToDecimal(totalCents)
	return &o, nil
}

func (r *orderRepository) loadItems(ctx context.Context, q interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}, orderID int64) ([]model.OrderItem, error) {
	const query = `SELECT product_id, name, brand, price_cents, quantity FROM order_items WHERE order_id=$1 ORDER BY id`
	rows, err := q.Query(ctx, query, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.OrderItem
	for rows.Next() {
		var item model.OrderItem
		var priceCents int64
		if err := rows.Scan(&item.ProductID, &item.Name, &item.Brand, &priceCents, &item.Quantity); err != nil {
			return nil, err
		}
		item.Price = centsToDecimal(priceCents)
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *orderRepository) GetByID(ctx context.Context, id int64) (*model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1`
	order, err := scanOrder(r.storage.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, r.storage.pool, id)
	if err != nil {
		return nil, err
	}
	order.Items = items
	return order, nil
}

func (r *orderRepository) List(ctx context.Context, filter model.OrderFilter) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.BuyerID != 0 {
		query += ` AND buyer_id=` + arg(filter.BuyerID)
	}
	if filter.SellerID != 0 {
		query += ` AND seller_id=` + arg(filter.SellerID)
	}
	if filter.Status != "" {
		query += ` AND status=` + arg(string(filter.Status))
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		items, err := r.loadItems(ctx, r.storage.pool, result[i].ID)
		if err != nil {
			return nil, err
		}
		result[i].Items = items
	}
	return result, nil
}

// UpdateStatus re-validates the edge against the current status under
// a row lock, so concurrent transitions on the same order serialize.
func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus, restock bool) (*model.Order, error) {
	var updated *model.Order
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		selectQuery := `SELECT ` + orderColumns + ` FROM orders WHERE id=$1 FOR UPDATE`
		order, err := scanOrder(tx.QueryRow(ctx, selectQuery, orderID))
		if err != nil {
			return err
		}
		if !order.Status.CanTransitionTo(status) {
			return &domainErrors.InvalidTransitionError{From: order.Status, To: status}
		}

		const updateQuery = `UPDATE orders SET status=$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, updateQuery, string(status), orderID); err != nil {
			return err
		}

		if restock && status == model.OrderStatusCancelled {
			const restockQuery = `UPDATE products p
                                  SET stock = p.stock + oi.quantity, updated_at = NOW()
                                  FROM order_items oi
                                  WHERE oi.order_id=$1 AND p.id = oi.product_id`
			if _, err := tx.Exec(ctx, restockQuery, orderID); err != nil {
				return err
			}
		}

		items, err := r.loadItems(ctx, tx, orderID)
		if err != nil {
			return err
		}
		order.Items = items
		order.Status = status
		updated = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *orderRepository) ListStalePending(ctx context.Context, cutoff time.Time, limit int) ([]model.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE status=$1 AND created_at < $2 ORDER BY id LIMIT $3`
	rows, err := r.storage.pool.Query(ctx, query, string(model.OrderStatusPending), cutoff, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
