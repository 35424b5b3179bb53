// Package agent routes classified storefront queries to their handlers over
// explicit session state: catalog, cart, orders, profile, and query log.
package agent

import (
	"context"
	"database/sql"
	"math/rand"
	"time"

	"github.com/alexanderramin/clerk/internal/db"
	"github.com/alexanderramin/clerk/internal/domain"
	"github.com/alexanderramin/clerk/internal/recommend"
	"github.com/alexanderramin/clerk/internal/repository"
)

// Session owns all mutable per-run state. It replaces what would otherwise
// be process globals, so independent sessions (and tests) never share state.
type Session struct {
	products repository.ProductRepo
	cart     repository.CartRepo
	orders   repository.OrderRepo
	profile  repository.ProfileRepo
	log      repository.QueryLogRepo
	uow      db.UnitOfWork

	engine   *recommend.Engine
	rng      *rand.Rand
	now      func() time.Time
	observer TurnObserver

	warrantySubscribed bool
}

// Option configures optional Session collaborators.
type Option func(*Session)

// WithClock overrides the time source, letting tests pin "now".
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithRand overrides the randomness source used for tracking codes and the
// recommendation engine.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
		s.engine = recommend.New(rng)
	}
}

// WithObserver installs a turn observer.
func WithObserver(o TurnObserver) Option {
	return func(s *Session) {
		s.observer = o
	}
}

// WithWarrantySubscription presets the warranty subscription flag.
func WithWarrantySubscription(subscribed bool) Option {
	return func(s *Session) {
		s.warrantySubscribed = subscribed
	}
}

// NewSession wires a session over the given database.
func NewSession(database *sql.DB, opts ...Option) *Session {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	s := &Session{
		products: repository.NewSQLiteProductRepo(database),
		cart:     repository.NewSQLiteCartRepo(database),
		orders:   repository.NewSQLiteOrderRepo(database),
		profile:  repository.NewSQLiteProfileRepo(database),
		log:      repository.NewSQLiteQueryLogRepo(database),
		uow:      db.NewSQLiteUnitOfWork(database),
		rng:      rng,
		engine:   recommend.New(rng),
		now:      func() time.Time { return time.Now().UTC() },
		observer: NoopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WarrantySubscribed reports the process-wide warranty subscription flag.
func (s *Session) WarrantySubscribed() bool {
	return s.warrantySubscribed
}

// SetWarrantySubscribed flips the warranty subscription flag.
func (s *Session) SetWarrantySubscribed(subscribed bool) {
	s.warrantySubscribed = subscribed
}

// Profile exposes the profile repository to the CLI surfaces that edit it
// outside the chat loop.
func (s *Session) Profile() repository.ProfileRepo {
	return s.profile
}

// Products exposes the read-only catalog.
func (s *Session) Products() repository.ProductRepo {
	return s.products
}

// Orders exposes order history for the CLI order listing.
func (s *Session) Orders() repository.OrderRepo {
	return s.orders
}

// QueryLog exposes the append-only turn log for the insight surfaces.
func (s *Session) QueryLog() repository.QueryLogRepo {
	return s.log
}

func (s *Session) logTurn(ctx context.Context, query, response string) {
	// A failed log write must not break the turn; the response still goes out.
	_ = s.log.Append(ctx, &domain.QueryLogEntry{
		Query:     query,
		Response:  response,
		CreatedAt: s.now(),
	})
}
