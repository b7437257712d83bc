package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

type PostgresSaleRepository struct {
	db *sql.DB
}

func NewPostgresSaleRepository(db *sql.DB) *PostgresSaleRepository {
	return &PostgresSaleRepository{db: db}
}

func (r *PostgresSaleRepository) Create(s models.Sale) (models.Sale, error) {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	query := `INSERT INTO sales (id, date, customer_name, products, total_value, created_at) VALUES ($1, $2, $3, $4, $5, $6)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, s.ID, s.Date, s.CustomerName, s.Products, s.TotalValue, s.CreatedAt)
	return s, err
}

func (r *PostgresSaleRepository) GetAll() ([]models.Sale, error) {
	query := `SELECT id, date, customer_name, products, total_value FROM sales ORDER BY date DESC`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sales []models.Sale
	for rows.Next() {
		var s models.Sale
		if err := rows.Scan(&s.ID, &s.Date, &s.CustomerName, &s.Products, &s.TotalValue); err != nil {
			return nil, err
		}
		sales = append(sales, s)
	}
	return sales, rows.Err()
}

func (r *PostgresSaleRepository) GetByID(id string) (models.Sale, error) {
	query := `SELECT id, date, customer_name, products, total_value FROM sales WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var s models.Sale
	err := r.db.QueryRowContext(ctx, query, id).Scan(&s.ID, &s.Date, &s.CustomerName, &s.Products, &s.TotalValue)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Sale{}, ErrSaleNotFound
	}
	return s, err
}
