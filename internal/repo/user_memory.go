package repo

import (
	"sync"

	"github.com/google/uuid"

	"github.com/acrispim/shopdash/internal/models"
)

// InMemoryUserRepository is an in-memory implementation of UserRepository.
type InMemoryUserRepository struct {
	mu    sync.RWMutex
	users []models.User
}

// NewInMemoryUserRepository creates a new instance of InMemoryUserRepository.
func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{users: []models.User{}}
}

// Create adds a new user, minting an ID when none is set.
func (r *InMemoryUserRepository) Create(user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return models.User{}, ErrDuplicatedValueUnique
		}
	}
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	r.users = append(r.users, user)
	return user, nil
}

// GetAll retrieves all users.
func (r *InMemoryUserRepository) GetAll() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]models.User, len(r.users))
	copy(users, r.users)
	return users, nil
}

// GetByEmail retrieves a user by email.
func (r *InMemoryUserRepository) GetByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}
