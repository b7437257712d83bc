package repo

import (
	"sort"

	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// InMemorySaleRepository is an in-memory implementation of SaleRepository.
type InMemorySaleRepository struct {
	sales []models.Sale
}

// NewInMemorySaleRepository creates a new instance of InMemorySaleRepository.
func NewInMemorySaleRepository() *InMemorySaleRepository {
	return &InMemorySaleRepository{sales: []models.Sale{}}
}

// Create records a new sale.
func (r *InMemorySaleRepository) Create(sale models.Sale) (models.Sale, error) {
	if sale.ID == "" {
		sale.ID = uuid.NewString()
	}
	r.sales = append(r.sales, sale)
	return sale, nil
}

// GetAll retrieves all sales, most recent first.
func (r *InMemorySaleRepository) GetAll() ([]models.Sale, error) {
	out := append([]models.Sale{}, r.sales...)
	sort.Slice(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

// GetByID retrieves a sale by its ID.
func (r *InMemorySaleRepository) GetByID(id string) (models.Sale, error) {
	for _, s := range r.sales {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Sale{}, ErrSaleNotFound
}

func (r *InMemorySaleRepository) Clear() {
	r.sales = []models.Sale{}
}
