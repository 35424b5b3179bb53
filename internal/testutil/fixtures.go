package testutil

import (
	"math/rand"
	"time"

	"github.com/alexanderramin/clerk/internal/domain"
)

// Order options
type OrderOption func(*domain.Order)

// WithCreatedAt overrides the order creation time, letting tests simulate
// orders aged past the cancellation or return windows.
func WithCreatedAt(t time.Time) OrderOption {
	return func(o *domain.Order) {
		o.CreatedAt = t
	}
}

func WithStatus(s domain.OrderStatus) OrderOption {
	return func(o *domain.Order) {
		o.Status = s
	}
}

func WithTracking(code string) OrderOption {
	return func(o *domain.Order) {
		o.Tracking = code
	}
}

// NewTestOrder builds an order with the given id and items, defaulting to a
// just-created Processing order.
func NewTestOrder(id string, itemIDs []int, opts ...OrderOption) *domain.Order {
	o := &domain.Order{
		ID:        id,
		ItemIDs:   itemIDs,
		CreatedAt: time.Now().UTC(),
		Status:    domain.OrderProcessing,
		Tracking:  "TRACK-0000",
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Product options
type ProductOption func(*domain.Product)

func WithColor(c string) ProductOption {
	return func(p *domain.Product) {
		p.Color = c
	}
}

func WithSize(s string) ProductOption {
	return func(p *domain.Product) {
		p.Size = s
	}
}

// NewTestProduct builds a catalog record for engine tests that work on
// product slices directly instead of the seeded table.
func NewTestProduct(id int, name string, price float64, category string, opts ...ProductOption) domain.Product {
	p := domain.Product{
		ID:       id,
		Name:     name,
		Price:    price,
		Category: category,
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

// SeededRand returns a deterministic randomness source for reproducible
// sampling assertions.
func SeededRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
