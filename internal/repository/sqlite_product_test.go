package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/clerk/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductRepo_GetByID_SeededCatalog(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	p, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Blue Running Shoes", p.Name)
	assert.Equal(t, 80.0, p.Price)
	assert.Equal(t, "shoes", p.Category)
	assert.Equal(t, "US 10", p.Size)

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProductRepo_FindByNameContains(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	tests := []struct {
		name     string
		fragment string
		wantIDs  []int
	}{
		{"ambiguous fragment", "shoes", []int{1, 6}},
		{"unique fragment", "t-shirt", []int{2}},
		{"case insensitive", "WIRELESS", []int{3}},
		{"no match", "umbrella", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			products, err := repo.FindByNameContains(ctx, tc.fragment)
			require.NoError(t, err)
			var ids []int
			for _, p := range products {
				ids = append(ids, p.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
		})
	}
}

func TestProductRepo_ListByCategory(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProductRepo(db)
	ctx := context.Background()

	electronics, err := repo.ListByCategory(ctx, "electronics")
	require.NoError(t, err)
	require.Len(t, electronics, 2)
	assert.Equal(t, "Wireless Headphones", electronics[0].Name)
	assert.Equal(t, "Laptop Charger", electronics[1].Name)
}
