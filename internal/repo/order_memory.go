package repo

import (
	"sort"

	"github.com/google/uuid"

	"github.com/camila-fonseca/aroma-atelier/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
type InMemoryOrderRepository struct {
	orders []models.Order
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: []models.Order{}}
}

// Create adds a new order to the repository.
func (r *InMemoryOrderRepository) Create(order models.Order) (models.Order, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	r.orders = append(r.orders, order)
	return order, nil
}

// GetAll retrieves all orders sorted by deadline, soonest first.
func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	out := append([]models.Order{}, r.orders...)
	sort.Slice(out, func(i, j int) bool { return out[i].Deadline < out[j].Deadline })
	return out, nil
}

// GetByID retrieves an order by its ID.
func (r *InMemoryOrderRepository) GetByID(id string) (models.Order, error) {
	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Update modifies an existing order in the repository.
func (r *InMemoryOrderRepository) Update(order models.Order) (models.Order, error) {
	for i, o := range r.orders {
		if o.ID == order.ID {
			r.orders[i] = order
			return order, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Delete removes an order from the repository by its ID.
func (r *InMemoryOrderRepository) Delete(id string) error {
	for i, o := range r.orders {
		if o.ID == id {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			return nil
		}
	}
	return ErrOrderNotFound
}

func (r *InMemoryOrderRepository) Clear() {
	r.orders = []models.Order{}
}
