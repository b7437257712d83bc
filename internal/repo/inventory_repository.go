package repo

import (
	"errors"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// ErrItemNotFound is returned when an inventory item is not found in the repository.
var ErrItemNotFound = errors.New("inventory item not found")

// InventoryRepository defines the interface for inventory data operations.
type InventoryRepository interface {
	Create(item models.InventoryItem) (models.InventoryItem, error)
	GetAll() ([]models.InventoryItem, error)
	GetByID(id string) (models.InventoryItem, error)
	// FindByNameCategory matches name case-insensitively and category
	// exactly; it backs the auto-merge rule for duplicate stock adds.
	FindByNameCategory(name, category string) (models.InventoryItem, error)
	Update(item models.InventoryItem) (models.InventoryItem, error)
	Delete(id string) error
	// SaveAll replaces the whole collection, last writer wins.
	SaveAll(items []models.InventoryItem) error
}
