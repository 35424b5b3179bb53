package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/clerk/internal/domain"
)

// ErrNotFound is returned when a referenced record does not exist.
var ErrNotFound = errors.New("not found")

// ProductRepo is the read-only catalog. Rows are immutable after seeding.
type ProductRepo interface {
	GetByID(ctx context.Context, id int) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// FindByNameContains returns products whose lowercased name contains the
	// lowercased fragment, in catalog order.
	FindByNameContains(ctx context.Context, fragment string) ([]domain.Product, error)
}

// CartRepo is the session cart: an ordered sequence of product references
// with duplicates allowed.
type CartRepo interface {
	Add(ctx context.Context, productID int) error
	AddAll(ctx context.Context, productIDs []int) error
	// RemoveOne removes a single unit of the given product. Returns
	// ErrNotFound when the product is not in the cart.
	RemoveOne(ctx context.Context, productID int) error
	List(ctx context.Context) ([]int, error)
	Clear(ctx context.Context) error
}

// OrderRepo owns the active order set and the sequential id allocator.
// Returned and canceled orders are removed outright; ids are never reused.
type OrderRepo interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	// Latest returns the most recently created order, or ErrNotFound.
	Latest(ctx context.Context) (*domain.Order, error)
	Delete(ctx context.Context, id string) error
	// NextOrderID allocates the next sequential order id ("1", "2", ...).
	NextOrderID(ctx context.Context) (string, error)
}

// ProfileRepo is the singleton customer profile.
type ProfileRepo interface {
	Get(ctx context.Context) (*domain.UserProfile, error)
	Update(ctx context.Context, p *domain.UserProfile) error
}

// QueryLogRepo is the append-only turn log.
type QueryLogRepo interface {
	Append(ctx context.Context, e *domain.QueryLogEntry) error
	List(ctx context.Context) ([]*domain.QueryLogEntry, error)
}
