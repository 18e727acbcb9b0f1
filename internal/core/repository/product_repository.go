package repository

import (
	"context"

	"github.com/okulikov/orderdesk/internal/core/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	// Delete removes the product and its order links. Referencing orders
	// stay behind with fewer line items; that is accepted behavior.
	Delete(ctx context.Context, id int64) error
}
