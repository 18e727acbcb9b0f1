package repository

import (
	"context"

	"github.com/okulikov/orderdesk/internal/core/domain"
)

// Sort fields accepted by ListSorted. Anything else falls back to SortByDate.
const (
	SortByDate  = "date"
	SortByTotal = "total"
)

type OrderRepository interface {
	// Create inserts the order row and one link row per distinct listed
	// product as a single transaction. A product listed twice yields one
	// link row; the link table has a composite primary key.
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id int64) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// ListSorted materializes the full order list and sorts it in memory.
	// The sort is stable: ties keep List order.
	ListSorted(ctx context.Context, sortBy string, descending bool) ([]*domain.Order, error)
	Delete(ctx context.Context, id int64) error
}
