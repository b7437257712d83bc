package repo

import (
	"context"
	"database/sql"
	"time"
)

type PostgresSummaryRepository struct {
	db *sql.DB
}

func NewPostgresSummaryRepository(db *sql.DB) *PostgresSummaryRepository {
	return &PostgresSummaryRepository{db: db}
}

// GetDashboardSummary implements SummaryRepository.
func (r *PostgresSummaryRepository) GetDashboardSummary() (Summary, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	s := Summary{}

	var lastSale sql.NullString
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(total_value), 0), COUNT(*), MAX(date) FROM sales`,
	).Scan(&s.TotalRevenue, &s.SalesCount, &lastSale)
	if err != nil {
		return s, err
	}
	s.LastSaleDate = lastSale.String

	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&s.TotalProducts); err != nil {
		return s, err
	}

	// Threshold boundary is inclusive: quantity equal to the minimum counts
	// as low stock.
	err = r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM inventory_items WHERE quantity <= min_threshold`,
	).Scan(&s.LowStockCount)
	return s, err
}
