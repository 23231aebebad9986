package main

import (
	"context"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/acrispim/shopdash/internal/auth"
	"github.com/acrispim/shopdash/internal/config"
	"github.com/acrispim/shopdash/internal/dashboard"
	"github.com/acrispim/shopdash/internal/db"
	api "github.com/acrispim/shopdash/internal/http"
	"github.com/acrispim/shopdash/internal/http/handlers"
	rl "github.com/acrispim/shopdash/internal/http/rate_limiter"
	"github.com/acrispim/shopdash/internal/redissvc"
	"github.com/acrispim/shopdash/internal/repo"
)

// @title Shopdash Admin API
// @version 1.0
// @description Admin dashboard backend: store metrics aggregation and order/catalog management.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	_ = godotenv.Load()

	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	auth.Configure(cfg.JWTSecret, cfg.JWTTTL)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("could not connect to Redis: %v", err)
	}
	defer rdb.Close()

	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	defer database.Close()

	orderRepo := repo.NewPostgresOrderRepository(database)
	productRepo := repo.NewPostgresProductRepository(database)
	userRepo := repo.NewPostgresUserRepository(database)
	handlers.SetOrderRepo(orderRepo)
	handlers.SetProductRepo(productRepo)
	handlers.SetUserRepo(userRepo)

	cache := redissvc.NewSnapshotCache(rdb, 2*cfg.RefreshInterval)
	handlers.SetSnapshotCache(cache)

	dashLog := log.WithField("component", "dashboard")
	refresher := dashboard.NewRefresher(
		dashboard.NewRepoFetcher(orderRepo, productRepo, userRepo),
		dashboard.NewLogNotifier(dashLog),
		cache,
		dashLog,
		dashboard.Config{Interval: cfg.RefreshInterval},
	)
	refresher.Start()
	defer refresher.Stop()
	handlers.SetRefresher(refresher)

	go rl.StartVisitorCleanupLoop()

	r := api.NewRouter()
	log.Infof("server running on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		log.Fatal(err)
	}
}
