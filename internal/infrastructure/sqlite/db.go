package sqlite

import (
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	sqlite3 "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

const schema = `
CREATE TABLE IF NOT EXISTS clients (
	client_id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL,
	phone TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	product_id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	price REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS orders (
	order_id INTEGER PRIMARY KEY,
	client_id INTEGER NOT NULL,
	order_date DATETIME NOT NULL,
	status TEXT NOT NULL,
	FOREIGN KEY (client_id) REFERENCES clients(client_id)
);

CREATE TABLE IF NOT EXISTS order_products (
	order_id INTEGER NOT NULL,
	product_id INTEGER NOT NULL,
	FOREIGN KEY (order_id) REFERENCES orders(order_id),
	FOREIGN KEY (product_id) REFERENCES products(product_id),
	PRIMARY KEY (order_id, product_id)
);

CREATE INDEX IF NOT EXISTS idx_orders_client_id ON orders(client_id);
CREATE INDEX IF NOT EXISTS idx_order_products_product_id ON order_products(product_id);
`

type DB struct {
	*sqlx.DB
}

// New opens the single connection the process holds for its lifetime and
// creates the schema idempotently.
func New(dbPath string) (*DB, error) {
	db, err := sqlx.Connect("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// The store holds exactly one connection for its lifetime; this is a
	// single-process, single-user tool.
	db.SetMaxOpenConns(1)

	// Enable WAL mode for better concurrency (allows concurrent reads/writes)
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	// Set busy timeout in case another local process still holds the file
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	// Create tables
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// isConstraintErr reports whether err is a primary key or uniqueness
// violation from the driver.
func isConstraintErr(err error) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT,
		sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY,
		sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		return true
	}
	return false
}
