package repo

import (
	"errors"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// ErrSaleNotFound is returned when a sale is not found in the repository.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sale data operations. Sales are
// immutable once recorded; there is no update or void flow.
type SaleRepository interface {
	Create(sale models.Sale) (models.Sale, error)
	GetAll() ([]models.Sale, error)
	GetByID(id string) (models.Sale, error)
}
