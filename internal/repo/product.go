package repo

import (
	"errors"

	"github.com/acrispim/shopdash/internal/models"
)

// ErrProductNotFound is returned when a product is not found in the repository.
var ErrProductNotFound = errors.New("product not found")

// ErrDuplicatedValueUnique is returned when an insert violates a unique constraint.
var ErrDuplicatedValueUnique = errors.New("duplicated value in unique column")

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Delete(id string) error
}
