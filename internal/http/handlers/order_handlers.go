package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	repo "github.com/acrispim/shopdash/internal/repo"
)

// GetOrdersHandler godoc
// @Summary List all orders
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Order
// @Failure 403 {string} string "Forbidden"
// @Failure 500 {string} string "Internal error"
// @Router /orders [get]
func GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	orders, err := orderRepo.GetAll()
	if err != nil {
		http.Error(w, "could not fetch orders", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, orders); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// GetOrderByIDHandler godoc
// @Summary Get order by ID
// @Tags orders
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Success 200 {object} models.Order
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id} [get]
func GetOrderByIDHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := chi.URLParam(r, "id")
	order, err := orderRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch order", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, order); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}

// UpdateOrderStatusHandler godoc
// @Summary Update an order's status
// @Tags orders
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Order ID"
// @Param status body OrderStatusRequest true "New status"
// @Success 200 {object} models.Order
// @Failure 400 {string} string "Invalid status"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /orders/{id}/status [patch]
func UpdateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	if !requireAdmin(w, r) {
		return
	}

	id := chi.URLParam(r, "id")

	var req OrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if !validStatus(req.Status) {
		http.Error(w, "invalid order status", http.StatusBadRequest)
		return
	}

	order, err := orderRepo.UpdateStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, repo.ErrOrderNotFound) {
			http.Error(w, "order not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not update order status", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, order); err != nil {
		log.Printf("failed to write JSON response: %v", err)
	}
}
