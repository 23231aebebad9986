package dashboard

import (
	"context"

	"github.com/acrispim/shopdash/internal/models"
	"github.com/acrispim/shopdash/internal/repo"
)

// Fetcher supplies the three raw collections the aggregator consumes. The
// refresher issues the three calls concurrently; implementations must be safe
// for concurrent use.
type Fetcher interface {
	Orders(ctx context.Context) ([]models.Order, error)
	Products(ctx context.Context) ([]models.Product, error)
	Users(ctx context.Context) ([]models.User, error)
}

// RepoFetcher adapts the store repositories to the Fetcher port.
type RepoFetcher struct {
	OrderRepo   repo.OrderRepository
	ProductRepo repo.ProductRepository
	UserRepo    repo.UserRepository
}

func NewRepoFetcher(orders repo.OrderRepository, products repo.ProductRepository, users repo.UserRepository) RepoFetcher {
	return RepoFetcher{OrderRepo: orders, ProductRepo: products, UserRepo: users}
}

func (f RepoFetcher) Orders(ctx context.Context) ([]models.Order, error) {
	return f.OrderRepo.GetAll()
}

func (f RepoFetcher) Products(ctx context.Context) ([]models.Product, error) {
	return f.ProductRepo.GetAll()
}

func (f RepoFetcher) Users(ctx context.Context) ([]models.User, error) {
	return f.UserRepo.GetAll()
}
