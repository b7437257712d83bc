package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	api "github.com/camila-fonseca/aroma-atelier/internal/http"
	handler "github.com/camila-fonseca/aroma-atelier/internal/http/handlers"
	rl "github.com/camila-fonseca/aroma-atelier/internal/http/rate_limiter"
	"github.com/camila-fonseca/aroma-atelier/internal/models"
	"github.com/camila-fonseca/aroma-atelier/internal/repo"
)

var (
	token         string
	inventoryRepo *repo.InMemoryInventoryRepository
	productRepo   *repo.InMemoryProductRepository
	saleRepo      *repo.InMemorySaleRepository
	orderRepo     *repo.InMemoryOrderRepository
	userRepo      *repo.InMemoryUserRepository
)

func init() {
	setupTestRepos("secret-pw")
	r := api.NewRouter(false)

	var err error
	token, err = generateToken(r, "admin", "secret-pw")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	inventoryRepo = repo.NewInMemoryInventoryRepository()
	handler.SetInventoryRepo(inventoryRepo)

	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	saleRepo = repo.NewInMemorySaleRepository()
	handler.SetSaleRepo(saleRepo)

	orderRepo = repo.NewInMemoryOrderRepository()
	handler.SetOrderRepo(orderRepo)

	userRepo = repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{
		ID:           uuid.NewString(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         "admin",
	})

	summaryRepo := repo.NewInMemorySummaryRepository()
	summaryRepo.SetRepositories(saleRepo, productRepo, inventoryRepo)
	handler.SetSummaryRepo(summaryRepo)
}

func clearAllData() {
	inventoryRepo.Clear()
	productRepo.Clear()
	saleRepo.Clear()
	orderRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	rl.CleanupAllVisitors()
	payload := handler.LoginRequest{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.TokenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.AccessToken, nil
}

// doJSON performs a request against the router, attaching the suite's
// bearer token when authed is true.
func doJSON(r http.Handler, method, path string, payload any, authed bool) *httptest.ResponseRecorder {
	var body *bytes.Reader
	if payload != nil {
		b, _ := json.Marshal(payload)
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	if authed {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seedInventoryItem(name, category string, quantity float64, unit string, minThreshold float64) models.InventoryItem {
	now := time.Now().Format(time.RFC3339)
	item, _ := inventoryRepo.Create(models.InventoryItem{
		ID:           uuid.NewString(),
		Name:         name,
		Category:     category,
		Quantity:     quantity,
		Unit:         unit,
		MinThreshold: minThreshold,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	return item
}

func seedProduct(name string, price float64, recipe []models.RecipeItem) models.Product {
	now := time.Now().Format(time.RFC3339)
	product, _ := productRepo.Create(models.Product{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Recipe:    recipe,
		CreatedAt: now,
		UpdatedAt: now,
	})
	return product
}
