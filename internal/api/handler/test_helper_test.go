package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/okulikov/orderdesk/internal/core/repository"
	"github.com/okulikov/orderdesk/internal/core/service"
	"github.com/okulikov/orderdesk/internal/infrastructure/sqlite"
)

// testEnv holds all test dependencies
type testEnv struct {
	db     *sqlite.DB
	router *gin.Engine

	clientRepo  repository.ClientRepository
	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
}

// setupTestEnv creates a test environment with an in-memory SQLite database
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clientRepo := sqlite.NewClientRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	orderRepo := sqlite.NewOrderRepository(db, clientRepo)

	reportService := service.NewReportService()

	clientHandler := NewClientHandler(clientRepo)
	productHandler := NewProductHandler(productRepo)
	orderHandler := NewOrderHandler(orderRepo, clientRepo, productRepo)
	reportHandler := NewReportHandler(reportService, orderRepo, clientRepo)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	router.POST("/clients", clientHandler.CreateClient)
	router.GET("/clients", clientHandler.ListClients)
	router.GET("/clients/:id", clientHandler.GetClient)
	router.DELETE("/clients/:id", clientHandler.DeleteClient)

	router.POST("/products", productHandler.CreateProduct)
	router.GET("/products", productHandler.ListProducts)
	router.GET("/products/:id", productHandler.GetProduct)
	router.DELETE("/products/:id", productHandler.DeleteProduct)

	router.POST("/orders", orderHandler.CreateOrder)
	router.GET("/orders", orderHandler.ListOrders)
	router.GET("/orders/:id", orderHandler.GetOrder)
	router.DELETE("/orders/:id", orderHandler.DeleteOrder)

	router.GET("/reports/top-clients", reportHandler.TopClients)
	router.GET("/reports/orders-by-date", reportHandler.OrdersByDate)
	router.GET("/reports/client-graph", reportHandler.ClientGraph)

	return &testEnv{
		db:          db,
		router:      router,
		clientRepo:  clientRepo,
		productRepo: productRepo,
		orderRepo:   orderRepo,
	}
}

// get performs a GET request and returns the response
func (env *testEnv) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// post marshals body as JSON and performs a POST request
func (env *testEnv) post(t *testing.T, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}

	req, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// del performs a DELETE request
func (env *testEnv) del(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(http.MethodDelete, path, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// decode unmarshals a response body into v
func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

// seedShop inserts one client and three products over HTTP
func (env *testEnv) seedShop(t *testing.T) {
	t.Helper()

	w := env.post(t, "/clients", map[string]any{
		"client_id": 1, "name": "Ivan", "email": "ivan@example.com", "phone": "+79161234567",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to seed client: %d %s", w.Code, w.Body.String())
	}

	for i, price := range []float64{10, 20, 30} {
		w := env.post(t, "/products", map[string]any{
			"product_id": i + 1, "name": "Product", "price": price,
		})
		if w.Code != http.StatusCreated {
			t.Fatalf("failed to seed product %d: %d %s", i+1, w.Code, w.Body.String())
		}
	}
}
