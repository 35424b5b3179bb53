package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		price REAL NOT NULL CHECK (price >= 0),
		category TEXT NOT NULL,
		color TEXT NOT NULL DEFAULT '',
		size TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS cart_items (
		pos INTEGER PRIMARY KEY AUTOINCREMENT,
		product_id INTEGER NOT NULL REFERENCES products(id)
	)`,
	`CREATE TABLE IF NOT EXISTS orders (
		id TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'Processing',
		tracking TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS order_items (
		order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
		pos INTEGER NOT NULL,
		product_id INTEGER NOT NULL REFERENCES products(id),
		PRIMARY KEY (order_id, pos)
	)`,
	`CREATE TABLE IF NOT EXISTS order_sequence (
		id TEXT PRIMARY KEY CHECK (id = 'default'),
		next_id INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profile (
		id TEXT PRIMARY KEY CHECK (id = 'default'),
		name TEXT NOT NULL,
		address TEXT NOT NULL,
		payment TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS query_log (
		id TEXT PRIMARY KEY,
		query TEXT NOT NULL,
		response TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,
}

// seeds holds the initial store data: the demo catalog, the sequence row,
// and the default customer profile. INSERT OR IGNORE keeps file-backed
// databases stable across restarts.
var seeds = []string{
	`INSERT OR IGNORE INTO products (id, name, price, category, color, size) VALUES
		(1, 'Blue Running Shoes', 80, 'shoes', 'blue', 'US 10'),
		(2, 'Red T-Shirt', 20, 'clothing', 'red', 'M'),
		(3, 'Wireless Headphones', 150, 'electronics', 'black', ''),
		(4, 'Coffee Beans', 15, 'grocery', '', ''),
		(5, 'Laptop Charger', 30, 'electronics', '', ''),
		(6, 'Premium Running Shoes', 120, 'shoes', 'blue', 'US 10'),
		(7, 'Organic Coffee Beans', 25, 'grocery', '', '')`,
	`INSERT OR IGNORE INTO order_sequence (id, next_id) VALUES ('default', 1)`,
	`INSERT OR IGNORE INTO user_profile (id, name, address, payment) VALUES
		('default', 'John Doe', '123 Main St, City, USA', '****-1234 (masked for safety)')`,
}

// Migrate runs all schema migrations and seeds the static store data.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	for i, stmt := range seeds {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("seed %d: %w", i, err)
		}
	}
	return nil
}
