package repo

import (
	"sync"

	"github.com/google/uuid"

	"github.com/acrispim/shopdash/internal/models"
)

// InMemoryOrderRepository is an in-memory implementation of OrderRepository.
// The dashboard refresher reads while handlers write, so access is guarded.
type InMemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []models.Order
}

// NewInMemoryOrderRepository creates a new instance of InMemoryOrderRepository.
func NewInMemoryOrderRepository() *InMemoryOrderRepository {
	return &InMemoryOrderRepository{orders: []models.Order{}}
}

// Create adds a new order, minting an ID when none is set.
func (r *InMemoryOrderRepository) Create(order models.Order) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	r.orders = append(r.orders, order)
	return order, nil
}

// GetAll retrieves all orders in insertion order.
func (r *InMemoryOrderRepository) GetAll() ([]models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	orders := make([]models.Order, len(r.orders))
	copy(orders, r.orders)
	return orders, nil
}

// GetByID retrieves an order by its ID.
func (r *InMemoryOrderRepository) GetByID(id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// UpdateStatus replaces the status of an existing order.
func (r *InMemoryOrderRepository) UpdateStatus(id, status string) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, o := range r.orders {
		if o.ID == id {
			r.orders[i].Status = status
			return r.orders[i], nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// Clear removes all orders. Test helper.
func (r *InMemoryOrderRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders = []models.Order{}
}
