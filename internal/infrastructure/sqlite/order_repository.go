package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

type orderRepository struct {
	db      *DB
	clients repository.ClientRepository
}

func NewOrderRepository(db *DB, clients repository.ClientRepository) repository.OrderRepository {
	return &orderRepository{db: db, clients: clients}
}

// Create inserts the order row and its link rows in one transaction, so a
// failed add never leaves partial link rows behind. Link inserts use
// INSERT OR IGNORE: the link table's composite primary key caps a product
// listed twice to a single row.
func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	clientID := int64(0)
	if order.Client != nil {
		clientID = order.Client.ID
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO orders (order_id, client_id, order_date, status)
		VALUES (?, ?, ?, ?)
	`, order.ID, clientID, order.Date.Format(time.RFC3339), order.Status)
	if isConstraintErr(err) {
		return fmt.Errorf("order %d: %w", order.ID, repository.ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	for _, p := range order.Products {
		if _, err := tx.ExecContext(ctx, `
			INSERT OR IGNORE INTO order_products (order_id, product_id)
			VALUES (?, ?)
		`, order.ID, p.ID); err != nil {
			return fmt.Errorf("failed to link product %d: %w", p.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order create: %w", err)
	}
	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*domain.Order, error) {
	var row struct {
		OrderID  int64  `db:"order_id"`
		ClientID int64  `db:"client_id"`
		Date     string `db:"order_date"`
		Status   string `db:"status"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT order_id, client_id, order_date, status
		FROM orders
		WHERE order_id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("order %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find order: %w", err)
	}

	date, err := time.Parse(time.RFC3339, row.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to parse order date: %w", err)
	}

	// The owning client may have been removed out from under the order;
	// that referential gap is a normal outcome, not an error.
	client, err := r.clients.FindByID(ctx, row.ClientID)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	var products []domain.Product
	if err := r.db.SelectContext(ctx, &products, `
		SELECT p.product_id, p.name, p.price
		FROM products p
		JOIN order_products op ON p.product_id = op.product_id
		WHERE op.order_id = ?
	`, id); err != nil {
		return nil, fmt.Errorf("failed to load order products: %w", err)
	}

	return &domain.Order{
		ID:       row.OrderID,
		Client:   client,
		Products: products,
		Date:     date,
		Status:   row.Status,
	}, nil
}

func (r *orderRepository) List(ctx context.Context) ([]*domain.Order, error) {
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, `SELECT order_id FROM orders ORDER BY order_id`); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	var orders []*domain.Order
	for _, id := range ids {
		order, err := r.FindByID(ctx, id)
		if errors.Is(err, repository.ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// ListSorted materializes the full order list and sorts it in memory with a
// stable sort. An unknown sort field falls back to date.
func (r *orderRepository) ListSorted(ctx context.Context, sortBy string, descending bool) ([]*domain.Order, error) {
	if sortBy != repository.SortByDate && sortBy != repository.SortByTotal {
		sortBy = repository.SortByDate
	}

	orders, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	var less func(a, b *domain.Order) bool
	switch sortBy {
	case repository.SortByTotal:
		less = func(a, b *domain.Order) bool { return a.TotalPrice() < b.TotalPrice() }
	default:
		less = func(a, b *domain.Order) bool { return a.Date.Before(b.Date) }
	}

	sort.SliceStable(orders, func(i, j int) bool {
		if descending {
			return less(orders[j], orders[i])
		}
		return less(orders[i], orders[j])
	})
	return orders, nil
}

func (r *orderRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_products WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete order links: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order delete: %w", err)
	}
	return nil
}
