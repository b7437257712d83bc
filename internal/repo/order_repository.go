package repo

import (
	"errors"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// ErrOrderNotFound is returned when an order is not found in the repository.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for customer order data operations.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByID(id string) (models.Order, error)
	Update(order models.Order) (models.Order, error)
	Delete(id string) error
}
