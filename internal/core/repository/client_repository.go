package repository

import (
	"context"

	"github.com/okulikov/orderdesk/internal/core/domain"
)

type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) error
	FindByID(ctx context.Context, id int64) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	// Delete removes the client and cascades to their orders and link rows.
	// Deleting an absent client is not an error.
	Delete(ctx context.Context, id int64) error
}
