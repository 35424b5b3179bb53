package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/clerk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepo_NextOrderID_SequentialFromOne(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	for _, want := range []string{"1", "2", "3"} {
		got, err := repo.NextOrderID(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestOrderRepo_NextOrderID_NeverReusedAfterDelete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	id, err := repo.NextOrderID(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Create(ctx, testutil.NewTestOrder(id, []int{1})))
	require.NoError(t, repo.Delete(ctx, id))

	next, err := repo.NextOrderID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", next, "deleting an order must not recycle its id")
}

func TestOrderRepo_CreateAndGet_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	order := testutil.NewTestOrder("1", []int{2, 1, 2},
		testutil.WithCreatedAt(created),
		testutil.WithTracking("TRACK-4242"),
	)
	require.NoError(t, repo.Create(ctx, order))

	got, err := repo.GetByID(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 2}, got.ItemIDs, "item snapshot order preserved")
	assert.True(t, got.CreatedAt.Equal(created))
	assert.Equal(t, "TRACK-4242", got.Tracking)
}

func TestOrderRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "99")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepo_Latest(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	_, err := repo.Latest(ctx)
	assert.ErrorIs(t, err, ErrNotFound, "empty order set has no latest")

	require.NoError(t, repo.Create(ctx, testutil.NewTestOrder("1", []int{1})))
	require.NoError(t, repo.Create(ctx, testutil.NewTestOrder("2", []int{2, 3})))

	latest, err := repo.Latest(ctx)
	require.NoError(t, err)
	assert.Equal(t, "2", latest.ID)
	assert.Equal(t, []int{2, 3}, latest.ItemIDs)
}

func TestOrderRepo_Delete_RemovesItems(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestOrder("1", []int{1, 2})))
	require.NoError(t, repo.Delete(ctx, "1"))

	var itemCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM order_items`).Scan(&itemCount))
	assert.Equal(t, 0, itemCount, "order items cascade on delete")

	err := repo.Delete(ctx, "1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestOrderRepo_GetByID_RejectsUnknownStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteOrderRepo(db)
	ctx := context.Background()

	_, err := db.ExecContext(ctx,
		`INSERT INTO orders (id, created_at, status, tracking) VALUES (?, ?, ?, ?)`,
		"1", time.Now().UTC().Format(time.RFC3339Nano), "Teleported", "TRACK-0000")
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown order status "Teleported"`)
}
