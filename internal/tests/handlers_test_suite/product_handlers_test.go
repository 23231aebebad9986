package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"testing"

	handler "github.com/acrispim/shopdash/internal/http/handlers"
	"github.com/acrispim/shopdash/internal/models"
)

func TestCreateProduct(t *testing.T) {
	clearAllProducts()

	w := createProduct(handler.ProductRequest{Name: "Green Tea", Price: 4.5, Stock: 100, Category: "beverages"})
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decoding product failed: %v", err)
	}
	if created.ID == "" {
		t.Error("created product must have an ID")
	}
	if created.Name != "Green Tea" || created.Price != 4.5 || created.Stock != 100 {
		t.Errorf("created product = %+v", created)
	}
}

func TestCreateProductValidation(t *testing.T) {
	clearAllProducts()

	w := createProduct(handler.ProductRequest{Name: "", Price: 0, Stock: -1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var validationErrors []handler.ValidationError
	if err := json.NewDecoder(w.Body).Decode(&validationErrors); err != nil {
		t.Fatalf("decoding validation errors failed: %v", err)
	}
	if len(validationErrors) != 3 {
		t.Errorf("validation errors = %+v, want name, price and stock entries", validationErrors)
	}
}

func TestCreateProductDuplicateName(t *testing.T) {
	clearAllProducts()

	p := handler.ProductRequest{Name: "Oolong", Price: 6, Stock: 10}
	if w := createProduct(p); w.Code != http.StatusCreated {
		t.Fatalf("first create status = %d", w.Code)
	}
	if w := createProduct(p); w.Code != http.StatusConflict {
		t.Errorf("duplicate create status = %d, want 409", w.Code)
	}
}

func TestGetProductsAllowsCustomerRole(t *testing.T) {
	clearAllProducts()
	createProduct(handler.ProductRequest{Name: "Sencha", Price: 5, Stock: 20})

	w := doRequest(http.MethodGet, "/products", nil, userToken)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for an authenticated customer", w.Code)
	}

	var products []models.Product
	if err := json.NewDecoder(w.Body).Decode(&products); err != nil {
		t.Fatalf("decoding products failed: %v", err)
	}
	if len(products) != 1 {
		t.Errorf("products = %d, want 1", len(products))
	}
}

func TestDeleteProduct(t *testing.T) {
	clearAllProducts()

	w := createProduct(handler.ProductRequest{Name: "Matcha", Price: 12, Stock: 5})
	var created models.Product
	if err := json.NewDecoder(w.Body).Decode(&created); err != nil {
		t.Fatalf("decoding product failed: %v", err)
	}

	if w := doRequest(http.MethodDelete, "/products/"+created.ID, nil, adminToken); w.Code != http.StatusNoContent {
		t.Fatalf("delete status = %d, want 204", w.Code)
	}
	if w := doRequest(http.MethodDelete, "/products/"+created.ID, nil, adminToken); w.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", w.Code)
	}
}

func TestProductWritesForbiddenForCustomerRole(t *testing.T) {
	if w := doRequest(http.MethodPost, "/products",
		handler.ProductRequest{Name: "Nope", Price: 1, Stock: 1}, userToken); w.Code != http.StatusForbidden {
		t.Errorf("create status = %d, want 403", w.Code)
	}
	if w := doRequest(http.MethodDelete, "/products/any", nil, userToken); w.Code != http.StatusForbidden {
		t.Errorf("delete status = %d, want 403", w.Code)
	}
}
