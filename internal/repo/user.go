package repo

import (
	"errors"

	"github.com/acrispim/shopdash/internal/models"
)

// ErrUserNotFound is returned when a user is not found in the repository.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the interface for account data operations.
type UserRepository interface {
	Create(user models.User) (models.User, error)
	GetAll() ([]models.User, error)
	GetByEmail(email string) (models.User, error)
}
