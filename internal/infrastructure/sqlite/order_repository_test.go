package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

func TestOrderRoundTrip(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 14, 30, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1, 3}, date)

	got, err := store.orders.FindByID(ctx, 100)
	if err != nil {
		t.Fatalf("failed to find order: %v", err)
	}
	if got.ID != 100 {
		t.Errorf("ID = %d, want 100", got.ID)
	}
	if got.Client == nil || got.Client.ID != 1 {
		t.Errorf("expected client 1, got %+v", got.Client)
	}
	if !got.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", got.Date, date)
	}
	if got.Status != domain.DefaultStatus {
		t.Errorf("Status = %q, want %q", got.Status, domain.DefaultStatus)
	}

	// The product list order is whatever the join yields; compare as a set
	gotIDs := make(map[int64]bool)
	for _, p := range got.Products {
		gotIDs[p.ID] = true
	}
	if len(gotIDs) != 2 || !gotIDs[1] || !gotIDs[3] {
		t.Errorf("expected products {1, 3}, got %v", gotIDs)
	}
}

func TestOrderDuplicateID(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1}, date)

	client, _ := store.clients.FindByID(ctx, 1)
	dup := domain.NewOrder(100, client, nil, date, "")
	err := store.orders.Create(ctx, dup)
	if !errors.Is(err, repository.ErrDuplicateID) {
		t.Errorf("expected ErrDuplicateID, got %v", err)
	}

	// The failed add must not leave extra link rows behind
	if n := store.countLinks(t, 100); n != 1 {
		t.Errorf("expected 1 link row, got %d", n)
	}
}

// The link table's composite primary key caps a product ordered twice to a
// single link row. The add still succeeds.
func TestOrderDuplicateLineItemCapsToOneLink(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{2, 2, 2}, date)

	if n := store.countLinks(t, 100); n != 1 {
		t.Errorf("expected 1 link row, got %d", n)
	}

	got, err := store.orders.FindByID(ctx, 100)
	if err != nil {
		t.Fatalf("failed to find order: %v", err)
	}
	if len(got.Products) != 1 {
		t.Errorf("expected 1 line item back, got %d", len(got.Products))
	}
	if total := got.TotalPrice(); total != 20 {
		t.Errorf("expected total 20, got %v", total)
	}
}

func TestOrderListSortedByTotal(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1}, date)    // total 10
	store.mustAddOrder(t, 101, 1, []int64{3}, date)    // total 30
	store.mustAddOrder(t, 102, 1, []int64{2}, date)    // total 20

	orders, err := store.orders.ListSorted(ctx, repository.SortByTotal, true)
	if err != nil {
		t.Fatalf("failed to list sorted orders: %v", err)
	}

	var totals []float64
	for _, o := range orders {
		totals = append(totals, o.TotalPrice())
	}
	want := []float64{30, 20, 10}
	if len(totals) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(totals))
	}
	for i := range want {
		if totals[i] != want[i] {
			t.Errorf("totals[%d] = %v, want %v", i, totals[i], want[i])
		}
	}
}

func TestOrderListSortedByDate(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1}, base.AddDate(0, 0, 2))
	store.mustAddOrder(t, 101, 1, []int64{1}, base)
	store.mustAddOrder(t, 102, 1, []int64{1}, base.AddDate(0, 0, 1))

	orders, err := store.orders.ListSorted(ctx, repository.SortByDate, false)
	if err != nil {
		t.Fatalf("failed to list sorted orders: %v", err)
	}
	for i, want := range []int64{101, 102, 100} {
		if orders[i].ID != want {
			t.Errorf("orders[%d].ID = %d, want %d", i, orders[i].ID, want)
		}
	}
}

// An unknown sort field falls back to date.
func TestOrderListSortedInvalidField(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1}, base.AddDate(0, 0, 1))
	store.mustAddOrder(t, 101, 1, []int64{1}, base)

	orders, err := store.orders.ListSorted(context.Background(), "price", false)
	if err != nil {
		t.Fatalf("failed to list sorted orders: %v", err)
	}
	if orders[0].ID != 101 || orders[1].ID != 100 {
		t.Errorf("expected date order [101 100], got [%d %d]", orders[0].ID, orders[1].ID)
	}
}

func TestOrderDelete(t *testing.T) {
	store := newTestStore(t)
	store.seedShop(t)
	ctx := context.Background()

	date := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	store.mustAddOrder(t, 100, 1, []int64{1, 2}, date)

	if err := store.orders.Delete(ctx, 100); err != nil {
		t.Fatalf("failed to delete order: %v", err)
	}
	if _, err := store.orders.FindByID(ctx, 100); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected order to be gone, got %v", err)
	}
	if n := store.countLinks(t, 100); n != 0 {
		t.Errorf("expected 0 link rows, got %d", n)
	}

	// The client and products survive
	if _, err := store.clients.FindByID(ctx, 1); err != nil {
		t.Errorf("expected client to survive, got %v", err)
	}
}

// Initializing the store twice against the same file must neither fail nor
// lose data.
func TestSchemaInitIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shop.db")
	ctx := context.Background()

	db, err := New(path)
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	clients := NewClientRepository(db)
	if err := clients.Create(ctx, domain.NewClient(1, "Ivan", "ivan@example.com", "+79161234567")); err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("failed to close database: %v", err)
	}

	db, err = New(path)
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	clients = NewClientRepository(db)
	got, err := clients.FindByID(ctx, 1)
	if err != nil {
		t.Fatalf("failed to find client after reopen: %v", err)
	}
	if got.Name != "Ivan" {
		t.Errorf("expected data to survive reinit, got %+v", got)
	}
}
