package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/clerk/internal/db"
	"github.com/alexanderramin/clerk/internal/domain"
)

// SQLiteProfileRepo implements ProfileRepo over the singleton profile row.
type SQLiteProfileRepo struct {
	db db.DBTX
}

// NewSQLiteProfileRepo creates a new SQLiteProfileRepo.
func NewSQLiteProfileRepo(conn db.DBTX) *SQLiteProfileRepo {
	return &SQLiteProfileRepo{db: conn}
}

func (r *SQLiteProfileRepo) Get(ctx context.Context) (*domain.UserProfile, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, address, payment FROM user_profile WHERE id = 'default'`)

	var p domain.UserProfile
	if err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Payment); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("user profile: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning user profile: %w", err)
	}
	return &p, nil
}

func (r *SQLiteProfileRepo) Update(ctx context.Context, p *domain.UserProfile) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE user_profile SET name = ?, address = ?, payment = ? WHERE id = 'default'`,
		p.Name, p.Address, p.Payment)
	if err != nil {
		return fmt.Errorf("updating user profile: %w", err)
	}
	return nil
}
