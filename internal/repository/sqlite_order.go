package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/alexanderramin/clerk/internal/db"
	"github.com/alexanderramin/clerk/internal/domain"
)

// SQLiteOrderRepo implements OrderRepo. Order items live in a child table
// keyed by (order_id, pos) so the cart snapshot's ordering survives.
type SQLiteOrderRepo struct {
	db db.DBTX
}

// NewSQLiteOrderRepo creates a new SQLiteOrderRepo.
func NewSQLiteOrderRepo(conn db.DBTX) *SQLiteOrderRepo {
	return &SQLiteOrderRepo{db: conn}
}

func (r *SQLiteOrderRepo) Create(ctx context.Context, o *domain.Order) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO orders (id, created_at, status, tracking) VALUES (?, ?, ?, ?)`,
		o.ID,
		o.CreatedAt.UTC().Format(time.RFC3339Nano),
		string(o.Status),
		o.Tracking,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}
	for pos, productID := range o.ItemIDs {
		_, err := r.db.ExecContext(ctx,
			`INSERT INTO order_items (order_id, pos, product_id) VALUES (?, ?, ?)`,
			o.ID, pos, productID)
		if err != nil {
			return fmt.Errorf("inserting order item: %w", err)
		}
	}
	return nil
}

func (r *SQLiteOrderRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, status, tracking FROM orders WHERE id = ?`, id)
	o, err := r.scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("order %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *SQLiteOrderRepo) List(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, created_at, status, tracking FROM orders ORDER BY CAST(id AS INTEGER)`)
	if err != nil {
		return nil, fmt.Errorf("listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*domain.Order
	for rows.Next() {
		o, err := r.scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning order row: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}
	for _, o := range orders {
		if err := r.loadItems(ctx, o); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *SQLiteOrderRepo) Latest(ctx context.Context) (*domain.Order, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, created_at, status, tracking FROM orders
		ORDER BY CAST(id AS INTEGER) DESC LIMIT 1`)
	o, err := r.scanOrder(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("latest order: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning order: %w", err)
	}
	if err := r.loadItems(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (r *SQLiteOrderRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("order %s: %w", id, ErrNotFound)
	}
	return nil
}

// NextOrderID allocates the next sequential order id. Allocation never rolls
// back to a lower value, so ids stay unique across deletions.
func (r *SQLiteOrderRepo) NextOrderID(ctx context.Context) (string, error) {
	var next int
	err := r.db.QueryRowContext(ctx,
		`UPDATE order_sequence SET next_id = next_id + 1
		WHERE id = 'default' RETURNING next_id - 1`).Scan(&next)
	if err != nil {
		return "", fmt.Errorf("allocating order id: %w", err)
	}
	return strconv.Itoa(next), nil
}

func (r *SQLiteOrderRepo) scanOrder(row rowScanner) (*domain.Order, error) {
	var o domain.Order
	var createdAt, status string
	if err := row.Scan(&o.ID, &createdAt, &status, &o.Tracking); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing order timestamp: %w", err)
	}
	o.CreatedAt = t
	if !domain.ValidOrderStatuses[status] {
		return nil, fmt.Errorf("unknown order status %q", status)
	}
	o.Status = domain.OrderStatus(status)
	return &o, nil
}

func (r *SQLiteOrderRepo) loadItems(ctx context.Context, o *domain.Order) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM order_items WHERE order_id = ? ORDER BY pos`, o.ID)
	if err != nil {
		return fmt.Errorf("listing order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int
		if err := rows.Scan(&productID); err != nil {
			return fmt.Errorf("scanning order item: %w", err)
		}
		o.ItemIDs = append(o.ItemIDs, productID)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterating order items: %w", err)
	}
	return nil
}
