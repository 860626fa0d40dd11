package postgres

import (
	"context"

	"github.com/saxtrade/marketplace/internal/domain/model"
)

// Finance aggregates are computed with direct scans over committed
// order rows; nothing is cached.

func (r *financeRepository) Summary(ctx context.Context, sellerID int64) (*model.FinanceSummary, error) {
	const query = `SELECT
                     COALESCE(SUM(CASE WHEN status IN ('paid','shipped','completed') THEN total_cents ELSE 0 END), 0),
                     COUNT(*) FILTER (WHERE status <> 'cancelled'),
                     COUNT(*) FILTER (WHERE status = 'pending'),
                     COUNT(*) FILTER (WHERE status = 'completed')
                   FROM orders
                   WHERE ($1 = 0 OR seller_id = $1)`
	var summary model.FinanceSummary
	var salesCents int64
	err := r.storage.pool.QueryRow(ctx, query, sellerID).
		Scan(&salesCents, &summary.TotalOrders, &summary.PendingOrders, &summary.CompletedOrders)
	if err != nil {
		return nil, err
	}
	summary.TotalSales = centsToDecimal(salesCents)
	return &summary, nil
}

func (r *financeRepository) SalesByDimension(ctx context.Context, sellerID int64, dim model.SalesDimension) ([]model.SalesBucket, error) {
	// Grouping keys come from the frozen order_items snapshots, not a
	// live join against products.
	const byName = `SELECT oi.name, SUM(oi.price_cents * oi.quantity), SUM(oi.quantity), COUNT(DISTINCT oi.order_id)
                    FROM order_items oi
                    JOIN orders o ON o.id = oi.order_id
                    WHERE o.status IN ('paid','shipped','completed') AND ($1 = 0 OR o.seller_id = $1)
                    GROUP BY oi.name ORDER BY oi.name`
	const byBrand = `SELECT oi.brand, SUM(oi.price_cents * oi.quantity), SUM(oi.quantity), COUNT(DISTINCT oi.order_id)
                     FROM order_items oi
                     JOIN orders o ON o.id = oi.order_id
                     WHERE o.status IN ('paid','shipped','completed') AND ($1 = 0 OR o.seller_id = $1)
                     GROUP BY oi.brand ORDER BY oi.brand`

	query := byName
	if dim == model.SalesByBrand {
		query = byBrand
	}

	rows, err := r.storage.pool.Query(ctx, query, sellerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SalesBucket
	for rows.Next() {
		var bucket model.SalesBucket
		var revenueCents int64
		if err := rows.Scan(&bucket.Key, &revenueCents, &bucket.Quantity, &bucket.Orders); err != nil {
			return nil, err
		}
		bucket.Revenue = centsToDecimal(revenueCents)
		result = append(result, bucket)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
