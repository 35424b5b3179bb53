package repository

import (
	"context"
	"fmt"

	"github.com/alexanderramin/clerk/internal/db"
)

// SQLiteCartRepo implements CartRepo. Insertion order is preserved by the
// autoincrement position column; duplicates are distinct rows.
type SQLiteCartRepo struct {
	db db.DBTX
}

// NewSQLiteCartRepo creates a new SQLiteCartRepo.
func NewSQLiteCartRepo(conn db.DBTX) *SQLiteCartRepo {
	return &SQLiteCartRepo{db: conn}
}

func (r *SQLiteCartRepo) Add(ctx context.Context, productID int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cart_items (product_id) VALUES (?)`, productID)
	if err != nil {
		return fmt.Errorf("adding cart item: %w", err)
	}
	return nil
}

func (r *SQLiteCartRepo) AddAll(ctx context.Context, productIDs []int) error {
	for _, id := range productIDs {
		if err := r.Add(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteCartRepo) RemoveOne(ctx context.Context, productID int) error {
	// Remove the earliest-added unit only; remaining duplicates stay.
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cart_items WHERE pos = (
			SELECT pos FROM cart_items WHERE product_id = ? ORDER BY pos LIMIT 1
		)`, productID)
	if err != nil {
		return fmt.Errorf("removing cart item: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking removed rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("cart item %d: %w", productID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteCartRepo) List(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT product_id FROM cart_items ORDER BY pos`)
	if err != nil {
		return nil, fmt.Errorf("listing cart items: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart items: %w", err)
	}
	return ids, nil
}

func (r *SQLiteCartRepo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("clearing cart: %w", err)
	}
	return nil
}
