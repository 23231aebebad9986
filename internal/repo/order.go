package repo

import (
	"errors"

	"github.com/acrispim/shopdash/internal/models"
)

// ErrOrderNotFound is returned when an order is not found in the repository.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order data operations.
type OrderRepository interface {
	Create(order models.Order) (models.Order, error)
	GetAll() ([]models.Order, error)
	GetByID(id string) (models.Order, error)
	UpdateStatus(id, status string) (models.Order, error)
}
