package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

type clientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) repository.ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(ctx context.Context, client *domain.Client) error {
	query := `
		INSERT INTO clients (client_id, name, email, phone)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		client.ID,
		client.Name,
		client.Email,
		client.Phone,
	)
	if isConstraintErr(err) {
		return fmt.Errorf("client %d: %w", client.ID, repository.ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}
	return nil
}

func (r *clientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	query := `
		SELECT client_id, name, email, phone
		FROM clients
		WHERE client_id = ?
	`
	var client domain.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("client %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*domain.Client, error) {
	query := `
		SELECT client_id, name, email, phone
		FROM clients
		ORDER BY client_id
	`
	var clients []*domain.Client
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

// Delete removes the client, their orders and all link rows of those orders
// in one transaction. A missing client is treated as success.
func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM order_products
		WHERE order_id IN (SELECT order_id FROM orders WHERE client_id = ?)
	`, id); err != nil {
		return fmt.Errorf("failed to delete client order links: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE client_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete client orders: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE client_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit client delete: %w", err)
	}
	return nil
}
