package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/clerk/internal/db"
	"github.com/alexanderramin/clerk/internal/domain"
	"github.com/google/uuid"
)

// SQLiteQueryLogRepo implements QueryLogRepo. Entries are returned in
// chronological (append) order.
type SQLiteQueryLogRepo struct {
	db db.DBTX
}

// NewSQLiteQueryLogRepo creates a new SQLiteQueryLogRepo.
func NewSQLiteQueryLogRepo(conn db.DBTX) *SQLiteQueryLogRepo {
	return &SQLiteQueryLogRepo{db: conn}
}

func (r *SQLiteQueryLogRepo) Append(ctx context.Context, e *domain.QueryLogEntry) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO query_log (id, query, response, created_at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Query, e.Response, e.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("appending query log entry: %w", err)
	}
	return nil
}

func (r *SQLiteQueryLogRepo) List(ctx context.Context) ([]*domain.QueryLogEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, query, response, created_at FROM query_log ORDER BY created_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing query log: %w", err)
	}
	defer rows.Close()

	var entries []*domain.QueryLogEntry
	for rows.Next() {
		var e domain.QueryLogEntry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Query, &e.Response, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning query log entry: %w", err)
		}
		t, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("parsing query log timestamp: %w", err)
		}
		e.CreatedAt = t
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating query log: %w", err)
	}
	return entries, nil
}
