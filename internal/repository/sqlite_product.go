package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/alexanderramin/clerk/internal/db"
	"github.com/alexanderramin/clerk/internal/domain"
)

// SQLiteProductRepo implements ProductRepo over the seeded products table.
type SQLiteProductRepo struct {
	db db.DBTX
}

// NewSQLiteProductRepo creates a new SQLiteProductRepo.
func NewSQLiteProductRepo(conn db.DBTX) *SQLiteProductRepo {
	return &SQLiteProductRepo{db: conn}
}

const productColumns = `id, name, price, category, color, size`

func (r *SQLiteProductRepo) GetByID(ctx context.Context, id int) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = ?`, id)
	p, err := scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning product: %w", err)
	}
	return p, nil
}

func (r *SQLiteProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY id`)
}

func (r *SQLiteProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products WHERE category = ? ORDER BY id`, category)
}

func (r *SQLiteProductRepo) FindByNameContains(ctx context.Context, fragment string) ([]domain.Product, error) {
	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	return r.list(ctx,
		`SELECT `+productColumns+` FROM products
		WHERE LOWER(name) LIKE ? ESCAPE '\' ORDER BY id`, pattern)
}

func (r *SQLiteProductRepo) list(ctx context.Context, query string, args ...any) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Color, &p.Size); err != nil {
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating products: %w", err)
	}
	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*domain.Product, error) {
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Name, &p.Price, &p.Category, &p.Color, &p.Size); err != nil {
		return nil, err
	}
	return &p, nil
}

// escapeLike escapes LIKE metacharacters so name fragments match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
