package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

// testStore bundles an in-memory database with its repositories
type testStore struct {
	db       *DB
	clients  repository.ClientRepository
	products repository.ProductRepository
	orders   repository.OrderRepository
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	clients := NewClientRepository(db)
	products := NewProductRepository(db)
	orders := NewOrderRepository(db, clients)

	return &testStore{
		db:       db,
		clients:  clients,
		products: products,
		orders:   orders,
	}
}

// seedShop inserts a client and three products every order test starts from
func (s *testStore) seedShop(t *testing.T) {
	t.Helper()
	ctx := context.Background()

	if err := s.clients.Create(ctx, domain.NewClient(1, "Ivan", "ivan@example.com", "+79161234567")); err != nil {
		t.Fatalf("failed to seed client: %v", err)
	}
	for _, p := range []*domain.Product{
		domain.NewProduct(1, "Tea", 10),
		domain.NewProduct(2, "Coffee", 20),
		domain.NewProduct(3, "Cocoa", 30),
	} {
		if err := s.products.Create(ctx, p); err != nil {
			t.Fatalf("failed to seed product %d: %v", p.ID, err)
		}
	}
}

func (s *testStore) mustAddOrder(t *testing.T, id int64, clientID int64, productIDs []int64, date time.Time) {
	t.Helper()
	ctx := context.Background()

	client, err := s.clients.FindByID(ctx, clientID)
	if err != nil {
		t.Fatalf("failed to look up client %d: %v", clientID, err)
	}
	products := make([]domain.Product, 0, len(productIDs))
	for _, pid := range productIDs {
		p, err := s.products.FindByID(ctx, pid)
		if err != nil {
			t.Fatalf("failed to look up product %d: %v", pid, err)
		}
		products = append(products, *p)
	}

	order := domain.NewOrder(id, client, products, date, "")
	if err := s.orders.Create(ctx, order); err != nil {
		t.Fatalf("failed to add order %d: %v", id, err)
	}
}

func (s *testStore) countLinks(t *testing.T, orderID int64) int {
	t.Helper()
	var n int
	if err := s.db.Get(&n, `SELECT COUNT(*) FROM order_products WHERE order_id = ?`, orderID); err != nil {
		t.Fatalf("failed to count link rows: %v", err)
	}
	return n
}
