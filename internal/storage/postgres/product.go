package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/saxtrade/marketplace/internal/domain/errors"
	"github.com/saxtrade/marketplace/internal/domain/model"
	"github.com/saxtrade/marketplace/internal/domain/repository"
)

const productColumns = `id, seller_id, name, brand, category, model, year, condition, material, description, price_cents, stock, status, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*model.Product, error) {
	var p model.Product
	var category, status string
	var priceCents *int64
	err := row.Scan(&p.ID, &p.SellerID, &p.Name, &p.Brand, &category, &p.Model, &p.Year,
		&p.Condition, &p.Material, &p.Description, &priceCents, &p.Stock, &status,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	p.Category = model.Category(category)
	p.Status = model.ProductStatus(status)
	p.Price = centsToPrice(priceCents)
	return &p, nil
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) (*model.Product, error) {
	const query = `INSERT INTO products (seller_id, name, brand, category, model, year, condition, material, description, price_cents, stock, status)
                   VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
                   RETURNING id, created_at, updated_at`
	stored := *product
	err := r.storage.pool.QueryRow(ctx, query,
		product.SellerID, product.Name, product.Brand, string(product.Category),
		product.Model, product.Year, product.Condition, product.Material,
		product.Description, priceToCents(product.Price), product.Stock,
		string(product.Status),
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *productRepository) GetByID(ctx context.Context, id int64) (*model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id=$1`
	return scanProduct(r.storage.pool.QueryRow(ctx, query, id))
}

func (r *productRepository) List(ctx context.Context, filter repository.ProductFilter) ([]model.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	var args []any
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if filter.SellerID != 0 {
		query += ` AND seller_id=` + arg(filter.SellerID)
	}
	if filter.Category != "" {
		query += ` AND category=` + arg(string(filter.Category))
	}
	if filter.Brand != "" {
		query += ` AND brand=` + arg(filter.Brand)
	}
	if filter.Status != "" {
		query += ` AND status=` + arg(string(filter.Status))
	}
	if filter.Search != "" {
		query += ` AND name ILIKE ` + arg("%"+filter.Search+"%")
	}
	query += ` ORDER BY id`

	rows, err := r.storage.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *productRepository) Update(ctx context.Context, id int64, patch model.ProductPatch) (*model.Product, error) {
	var updated *model.Product
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		selectQuery := `SELECT ` + productColumns + ` FROM products WHERE id=$1 FOR UPDATE`
		p, err := scanProduct(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			return err
		}

		patch.Apply(p)

		const updateQuery = `UPDATE products
                             SET name=$1, brand=$2, category=$3, model=$4, year=$5, condition=$6,
                                 material=$7, description=$8, price_cents=$9, status=$10, updated_at=NOW()
                             WHERE id=$11`
		if _, err := tx.Exec(ctx, updateQuery,
			p.Name, p.Brand, string(p.Category), p.Model, p.Year, p.Condition,
			p.Material, p.Description, priceToCents(p.Price), string(p.Status), id); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM products WHERE id=$1`
	tag, err := r.storage.pool.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domainErrors.ErrNotFound
	}
	return nil
}

func (r *productRepository) AdjustStock(ctx context.Context, id int64, delta int) (*model.Product, error) {
	var updated *model.Product
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		selectQuery := `SELECT ` + productColumns + ` FROM products WHERE id=$1 FOR UPDATE`
		p, err := scanProduct(tx.QueryRow(ctx, selectQuery, id))
		if err != nil {
			return err
		}
		if p.Stock+delta < 0 {
			return &domainErrors.InsufficientStockError{
				ProductID: p.ID,
				Name:      p.Name,
				Requested: -delta,
				Available: p.Stock,
			}
		}
		const updateQuery = `UPDATE products SET stock=stock+$1, updated_at=NOW() WHERE id=$2`
		if _, err := tx.Exec(ctx, updateQuery, delta, id); err != nil {
			return err
		}
		p.Stock += delta
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *productRepository) SetStock(ctx context.Context, id int64, stock int) (*model.Product, error) {
	if stock < 0 {
		return nil, domainErrors.ErrInvalidArgument
	}
	query := `UPDATE products SET stock=$1, updated_at=NOW() WHERE id=$2 RETURNING ` + productColumns
	return scanProduct(r.storage.pool.QueryRow(ctx, query, stock, id))
}

func (r *productRepository) InventorySnapshot(ctx context.Context, sellerID int64) ([]model.InventoryRow, error) {
	const query = `SELECT id, name, stock, status FROM products WHERE ($1=0 OR seller_id=$1) ORDER BY id`
	rows, err := r.storage.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.InventoryRow
	for rows.Next() {
		var row model.InventoryRow
		var status string
		if err := rows.Scan(&row.ProductID, &row.Name, &row.Stock, &status); err != nil {
			return nil, err
		}
		row.Status = model.ProductStatus(status)
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
