package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/acrispim/shopdash/internal/auth"
	"github.com/acrispim/shopdash/internal/dashboard"
	api "github.com/acrispim/shopdash/internal/http"
	handler "github.com/acrispim/shopdash/internal/http/handlers"
	"github.com/acrispim/shopdash/internal/models"
	"github.com/acrispim/shopdash/internal/repo"
)

var (
	router     http.Handler
	adminToken string
	userToken  string

	orderRepo   *repo.InMemoryOrderRepository
	productRepo *repo.InMemoryProductRepository
	userRepo    *repo.InMemoryUserRepository
)

// refTime pins the aggregation reference so month partitioning is stable.
var refTime = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func init() {
	auth.Configure("test-secret", 15*time.Minute)
	setupTestRepos("secret123")
	newRefresher()
	router = api.NewRouter()

	var err error
	adminToken, err = generateToken(router, "admin@example.com", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating admin token: %v", err))
	}
	userToken, err = generateToken(router, "customer@example.com", "secret123")
	if err != nil {
		panic(fmt.Sprintf("error generating customer token: %v", err))
	}
}

func setupTestRepos(password string) {
	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.Create(models.User{
		Name:         "Admin",
		Email:        "admin@example.com",
		Role:         "admin",
		PasswordHash: string(hash),
	})
	userRepo.Create(models.User{
		Name:         "Customer",
		Email:        "customer@example.com",
		Role:         "user",
		PasswordHash: string(hash),
	})
}

// newRefresher swaps in a fresh refresher with no published snapshot. It is
// never started; tests drive cycles through the manual refresh endpoint.
func newRefresher() *dashboard.Refresher {
	log := logrus.New()
	log.SetOutput(io.Discard)
	entry := logrus.NewEntry(log)

	r := dashboard.NewRefresher(
		dashboard.NewRepoFetcher(orderRepo, productRepo, userRepo),
		dashboard.NewLogNotifier(entry),
		nil,
		entry,
		dashboard.Config{
			Interval: time.Hour,
			Now:      func() time.Time { return refTime },
		},
	)
	handler.SetRefresher(r)
	return r
}

func generateToken(r http.Handler, email, password string) (string, error) {
	payload := handler.CredentialsRequest{Email: email, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func doRequest(method, path string, payload any, token string) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, body)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createProduct(p handler.ProductRequest) *httptest.ResponseRecorder {
	return doRequest(http.MethodPost, "/products", p, adminToken)
}

func seedOrder(o models.Order) models.Order {
	created, _ := orderRepo.Create(o)
	return created
}

func clearAllOrders() {
	orderRepo.Clear()
}

func clearAllProducts() {
	productRepo.Clear()
}
