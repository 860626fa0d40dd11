package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
)

func (r *cartRepository) Add(ctx context.Context, buyerID, productID int64, quantity int) (*model.CartItem, error) {
	// Upsert keyed on (buyer, product): repeat adds merge quantities.
	const query = `INSERT INTO cart_items (buyer_id, product_id, quantity)
                   VALUES ($1, $2, $3)
                   ON CONFLICT (buyer_id, product_id)
                   DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = NOW()
                   RETURNING id, quantity, created_at, updated_at`
	item := model.CartItem{BuyerID: buyerID, ProductID: productID}
	err := r.storage.pool.QueryRow(ctx, query, buyerID, productID, quantity).
		Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Get(ctx context.Context, itemID int64) (*model.CartItem, error) {
	const query = `SELECT id, buyer_id, product_id, quantity, created_at, updated_at FROM cart_items WHERE id=$1`
	var item model.CartItem
	err := r.storage.pool.QueryRow(ctx, query, itemID).
		Scan(&item.ID, &item.BuyerID, &item.ProductID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) Remove(ctx context.Context, itemID int64) error {
	const query = `DELETE FROM cart_items WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, itemID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *cartRepository) Clear(ctx context.Context, buyerID int64) error {
	const query = `DELETE FROM cart_items WHERE buyer_id=$1`
	_, err := r.storage.pool.Exec(ctx, query, buyerID)
	return err
}

func (r *cartRepository) List(ctx context.Context, buyerID int64) ([]model.CartLine, error) {
	// Inner join drops lines whose product has been deleted.
	query := `SELECT ci.id, ci.buyer_id, ci.product_id, ci.quantity, ci.created_at, ci.updated_at, ` +
		prefixedProductColumns("p") + `
                   FROM cart_items ci
                   JOIN products p ON p.id = ci.product_id
                   WHERE ci.buyer_id=$1
                   ORDER BY ci.id`
	rows, err := r.storage.pool.Query(ctx, query, buyerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.CartLine
	for rows.Next() {
		var line model.CartLine
		var category, status string
		var priceCents *int64
		err := rows.Scan(
			&line.Item.ID, &line.Item.BuyerID, &line.Item.ProductID, &line.Item.Quantity,
			&line.Item.CreatedAt, &line.Item.UpdatedAt,
			&line.Product.ID, &line.Product.SellerID, &line.Product.Name, &line.Product.Brand,
			&category, &line.Product.Model, &line.Product.Year, &line.Product.Condition,
			&line.Product.Material, &line.Product.Description, &priceCents,
			&line.Product.Stock, &status, &line.Product.CreatedAt, &line.Product.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		line.Product.Category = model.Category(category)
		line.Product.Status = model.ProductStatus(status)
		line.Product.Price = centsToPrice(priceCents)
		result = append(result, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func prefixedProductColumns(alias string) string {
	return alias + `.id, ` + alias + `.seller_id, ` + alias + `.name, ` + alias + `.brand, ` +
		alias + `.category, ` + alias + `.model, ` + alias + `.year, ` + alias + `.condition, ` +
		alias + `.material, ` + alias + `.description, ` + alias + `.price_cents, ` +
		alias + `.stock, ` + alias + `.status, ` + alias + `.created_at, ` + alias + `.updated_at`
}
