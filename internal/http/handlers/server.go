package handlers

import (
	"github.com/acrispim/shopdash/internal/dashboard"
	"github.com/acrispim/shopdash/internal/redissvc"
	repo "github.com/acrispim/shopdash/internal/repo"
)

var (
	orderRepo   repo.OrderRepository
	productRepo repo.ProductRepository
	userRepo    repo.UserRepository

	refresher     *dashboard.Refresher
	snapshotCache *redissvc.SnapshotCache
)

func SetOrderRepo(r repo.OrderRepository) {
	orderRepo = r
}

func SetProductRepo(r repo.ProductRepository) {
	productRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetRefresher(r *dashboard.Refresher) {
	refresher = r
}

func SetSnapshotCache(c *redissvc.SnapshotCache) {
	snapshotCache = c
}
