package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

func TestProductRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := domain.NewProduct(5, "Tea", 120.50)
	if err := store.products.Create(ctx, want); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	got, err := store.products.FindByID(ctx, 5)
	if err != nil {
		t.Fatalf("failed to find product: %v", err)
	}
	if got.ID != want.ID || got.Name != want.Name || got.Price != want.Price {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, want)
	}
}

func TestProductDuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.products.Create(ctx, domain.NewProduct(1, "Tea", 10)); err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	err := store.products.Create(ctx, domain.NewProduct(1, "Coffee", 20))
	if !errors.Is(err, repository.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}
}

// Deleting a product removes its link rows but leaves referencing orders in
// place with fewer line items; the derived total shrinks on the next read.
func TestProductDeleteShrinksOrders(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1, 2, 3}, date) // total 60

	before, err := store.orders.FindByID(ctx, 100)
	if err != nil {
		t.Fatalf("failed to find order: %v", err)
	}
	if total := before.TotalPrice(); total != 60 {
		t.Fatalf("expected total 60 before delete, got %v", total)
	}

	if err := store.products.Delete(ctx, 2); err != nil {
		t.Fatalf("failed to delete product: %v", err)
	}

	after, err := store.orders.FindByID(ctx, 100)
	if err != nil {
		t.Fatalf("expected order to survive product delete, got %v", err)
	}
	if len(after.Products) != 2 {
		t.Errorf("expected 2 remaining line items, got %d", len(after.Products))
	}
	if total := after.TotalPrice(); total != 40 {
		t.Errorf("expected total 40 after delete, got %v", total)
	}
}

func TestProductDeleteMissing(t *testing.T) {
	store := newTestStore(t)

	if err := store.products.Delete(context.Background(), 999); err != nil {
		t.Errorf("expected delete of missing product to succeed, got %v", err)
	}
}
