package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/acrispim/shopdash/internal/http/handlers"
)

func NewRouter() http.Handler {
	r := chi.NewRouter()

	r.Group(func(pub chi.Router) {
		pub.Use(RateLimitMiddleware)
		pub.Post("/login", handlers.LoginHandler)
		pub.Post("/register", handlers.RegisterHandler)
	})

	r.Group(func(priv chi.Router) {
		priv.Use(AuthMiddleware)

		priv.Get("/metrics/dashboard", handlers.GetDashboardHandler)
		priv.Post("/metrics/dashboard/refresh", handlers.RefreshDashboardHandler)

		priv.Get("/orders", handlers.GetOrdersHandler)
		priv.Get("/orders/{id}", handlers.GetOrderByIDHandler)
		priv.Patch("/orders/{id}/status", handlers.UpdateOrderStatusHandler)

		priv.Get("/products", handlers.GetProductsHandler)
		priv.Post("/products", handlers.CreateProductHandler)
		priv.Delete("/products/{id}", handlers.DeleteProductHandler)

		priv.Get("/users", handlers.GetUsersHandler)
	})

	return r
}
