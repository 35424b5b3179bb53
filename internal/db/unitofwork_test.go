package db

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitOfWork_CommitsOnSuccess(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO cart_items (product_id) VALUES (1)`)
		return err
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM cart_items`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestUnitOfWork_RollsBackOnError(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	err = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, `INSERT INTO cart_items (product_id) VALUES (1)`); err != nil {
			return err
		}
		return fmt.Errorf("boom")
	})
	require.Error(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM cart_items`).Scan(&count))
	assert.Equal(t, 0, count, "insert should be rolled back")
}

func TestUnitOfWork_RollsBackOnPanic(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	ctx := context.Background()

	assert.Panics(t, func() {
		_ = uow.WithinTx(ctx, func(ctx context.Context, tx DBTX) error {
			if _, err := tx.ExecContext(ctx, `INSERT INTO cart_items (product_id) VALUES (1)`); err != nil {
				return err
			}
			panic("mid-transaction fault")
		})
	})

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM cart_items`).Scan(&count))
	assert.Equal(t, 0, count, "insert should be rolled back on panic")
}
