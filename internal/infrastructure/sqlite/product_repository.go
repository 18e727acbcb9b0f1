package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/okulikov/orderdesk/internal/core/domain"
	"github.com/okulikov/orderdesk/internal/core/repository"
)

type productRepository struct {
	db *DB
}

func NewProductRepository(db *DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (product_id, name, price)
		VALUES (?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Price,
	)
	if isConstraintErr(err) {
		return fmt.Errorf("product %d: %w", product.ID, repository.ErrDuplicateID)
	}
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT product_id, name, price
		FROM products
		WHERE product_id = ?
	`
	var product domain.Product
	err := r.db.GetContext(ctx, &product, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, repository.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `
		SELECT product_id, name, price
		FROM products
		ORDER BY product_id
	`
	var products []*domain.Product
	if err := r.db.SelectContext(ctx, &products, query); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// Delete removes the product and its link rows. Orders that referenced it
// keep their remaining line items; their totals shrink on the next read.
func (r *productRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_products WHERE product_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product links: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM products WHERE product_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product delete: %w", err)
	}
	return nil
}
