package repo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

type PostgresInventoryRepository struct {
	db *sql.DB
}

func NewPostgresInventoryRepository(db *sql.DB) *PostgresInventoryRepository {
	return &PostgresInventoryRepository{db: db}
}

func (r *PostgresInventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	query := `INSERT INTO inventory_items (id, name, category, quantity, unit, min_threshold, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, query, item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.MinThreshold, item.CreatedAt, item.UpdatedAt)
	return item, err
}

func (r *PostgresInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	query := `SELECT id, name, category, quantity, unit, min_threshold FROM inventory_items ORDER BY name`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.InventoryItem
	for rows.Next() {
		var item models.InventoryItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.MinThreshold); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresInventoryRepository) GetByID(id string) (models.InventoryItem, error) {
	query := `SELECT id, name, category, quantity, unit, min_threshold FROM inventory_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var item models.InventoryItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.MinThreshold)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresInventoryRepository) FindByNameCategory(name, category string) (models.InventoryItem, error) {
	query := `SELECT id, name, category, quantity, unit, min_threshold FROM inventory_items
	          WHERE lower(name) = lower($1) AND category = $2`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var item models.InventoryItem
	err := r.db.QueryRowContext(ctx, query, name, category).Scan(&item.ID, &item.Name, &item.Category, &item.Quantity, &item.Unit, &item.MinThreshold)
	if errors.Is(err, sql.ErrNoRows) {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, err
}

func (r *PostgresInventoryRepository) Update(item models.InventoryItem) (models.InventoryItem, error) {
	query := `UPDATE inventory_items SET name = $1, category = $2, quantity = $3, unit = $4, min_threshold = $5, updated_at = $6 WHERE id = $7`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, item.Name, item.Category, item.Quantity, item.Unit, item.MinThreshold, item.UpdatedAt, item.ID)
	if err != nil {
		return models.InventoryItem{}, err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return models.InventoryItem{}, ErrItemNotFound
	}
	return item, nil
}

func (r *PostgresInventoryRepository) Delete(id string) error {
	query := `DELETE FROM inventory_items WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// SaveAll upserts every item in the snapshot and removes rows that are no
// longer present, mirroring the all-or-nothing save of the whole list.
func (r *PostgresInventoryRepository) SaveAll(items []models.InventoryItem) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	upsert := `INSERT INTO inventory_items (id, name, category, quantity, unit, min_threshold, created_at, updated_at)
	           VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	           ON CONFLICT (id) DO UPDATE SET
	             name = EXCLUDED.name, category = EXCLUDED.category, quantity = EXCLUDED.quantity,
	             unit = EXCLUDED.unit, min_threshold = EXCLUDED.min_threshold, updated_at = EXCLUDED.updated_at`
	ids := make([]string, 0, len(items))
	for _, item := range items {
		if _, err := tx.ExecContext(ctx, upsert, item.ID, item.Name, item.Category, item.Quantity, item.Unit, item.MinThreshold, item.CreatedAt, item.UpdatedAt); err != nil {
			return err
		}
		ids = append(ids, item.ID)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_items WHERE NOT (id = ANY($1))`, ids); err != nil {
		return err
	}
	return tx.Commit()
}
