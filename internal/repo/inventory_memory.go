package repo

import (
	"strings"

	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// InMemoryInventoryRepository is an in-memory implementation of InventoryRepository.
type InMemoryInventoryRepository struct {
	items []models.InventoryItem
}

// NewInMemoryInventoryRepository creates a new instance of InMemoryInventoryRepository.
func NewInMemoryInventoryRepository() *InMemoryInventoryRepository {
	return &InMemoryInventoryRepository{items: []models.InventoryItem{}}
}

// Create adds a new inventory item to the repository.
func (r *InMemoryInventoryRepository) Create(item models.InventoryItem) (models.InventoryItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	r.items = append(r.items, item)
	return item, nil
}

// GetAll retrieves all inventory items from the repository.
func (r *InMemoryInventoryRepository) GetAll() ([]models.InventoryItem, error) {
	return r.items, nil
}

// GetByID retrieves an inventory item by its ID.
func (r *InMemoryInventoryRepository) GetByID(id string) (models.InventoryItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

// FindByNameCategory retrieves the item whose name matches case-insensitively
// and whose category matches exactly.
func (r *InMemoryInventoryRepository) FindByNameCategory(name, category string) (models.InventoryItem, error) {
	for _, item := range r.items {
		if strings.EqualFold(item.Name, name) && item.Category == category {
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

// Update modifies an existing inventory item in the repository.
func (r *InMemoryInventoryRepository) Update(item models.InventoryItem) (models.InventoryItem, error) {
	for i, existing := range r.items {
		if existing.ID == item.ID {
			r.items[i] = item
			return item, nil
		}
	}
	return models.InventoryItem{}, ErrItemNotFound
}

// Delete removes an inventory item from the repository by its ID.
func (r *InMemoryInventoryRepository) Delete(id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return ErrItemNotFound
}

// SaveAll replaces the whole collection with the given snapshot.
func (r *InMemoryInventoryRepository) SaveAll(items []models.InventoryItem) error {
	r.items = append([]models.InventoryItem{}, items...)
	return nil
}

func (r *InMemoryInventoryRepository) Clear() {
	r.items = []models.InventoryItem{}
}
