package agent

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clerk/internal/intent"
	"github.com/alexanderramin/clerk/internal/repository"
	"github.com/alexanderramin/clerk/internal/testutil"
)

var fixedNow = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T, opts ...Option) *Session {
	t.Helper()
	database := testutil.NewTestDB(t)
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithRand(testutil.SeededRand(1)),
	}
	return NewSession(database, append(base, opts...)...)
}

func TestRespondClassifiesAndAnswers(t *testing.T) {
	s := newTestSession(t)

	reply := s.Respond(context.Background(), "view cart please")

	assert.Equal(t, intent.ViewCart, reply.Intent)
	assert.Equal(t, "Your cart is empty.", reply.Text)
	assert.False(t, reply.EnterDashboard)
}

func TestRespondLogsTurnAfterHandling(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSession(database, WithClock(func() time.Time { return fixedNow }))

	s.Respond(context.Background(), "view cart")

	entries, err := repository.NewSQLiteQueryLogRepo(database).List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "view cart", entries[0].Query)
	assert.Equal(t, "Your cart is empty.", entries[0].Response)
	assert.True(t, entries[0].CreatedAt.Equal(fixedNow))
}

func TestRespondDashboardEntersWithoutLogging(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSession(database)

	reply := s.Respond(context.Background(), "open admin dashboard")

	assert.Equal(t, intent.Dashboard, reply.Intent)
	assert.True(t, reply.EnterDashboard)
	assert.Empty(t, reply.Text)

	entries, err := repository.NewSQLiteQueryLogRepo(database).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExitDashboardLogsOpeningQuery(t *testing.T) {
	database := testutil.NewTestDB(t)
	s := NewSession(database, WithClock(func() time.Time { return fixedNow }))

	response := s.ExitDashboard(context.Background(), "open admin dashboard")

	assert.Equal(t, "Exited dashboard.", response)
	entries, err := repository.NewSQLiteQueryLogRepo(database).List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "open admin dashboard", entries[0].Query)
	assert.Equal(t, "Exited dashboard.", entries[0].Response)
}

func TestRespondRecoversFromHandlerPanic(t *testing.T) {
	s := newTestSession(t)
	s.engine = nil // forces a nil dereference inside the search handler

	reply := s.Respond(context.Background(), "search shoes")
	assert.Contains(t, reply.Text, "An unexpected error occurred")
	assert.Contains(t, reply.Text, "Please rephrase your query and try again.")

	// The session survives and the next turn works normally.
	next := s.Respond(context.Background(), "view cart")
	assert.Equal(t, "Your cart is empty.", next.Text)
}

func TestRespondUnknownIntent(t *testing.T) {
	s := newTestSession(t)

	reply := s.Respond(context.Background(), "sing me a song")

	assert.Equal(t, intent.Unknown, reply.Intent)
	assert.Equal(t, "Sorry, I can't handle this. Redirecting to human support with history.", reply.Text)
}

func TestRespondUnknownIntentWithAbandonedCart(t *testing.T) {
	s := newTestSession(t)
	s.Respond(context.Background(), "add red t-shirt to cart")

	reply := s.Respond(context.Background(), "sing me a song")

	assert.Equal(t, "Abandoned cart reminder: You have items in cart. Proceed to checkout? Also, redirecting to human support.", reply.Text)
}

type recordingObserver struct {
	events []TurnEvent
}

func (r *recordingObserver) OnTurnComplete(e TurnEvent) {
	r.events = append(r.events, e)
}

func TestRespondNotifiesObserver(t *testing.T) {
	obs := &recordingObserver{}
	s := newTestSession(t, WithObserver(obs))

	s.Respond(context.Background(), "view cart")
	s.engine = nil
	s.Respond(context.Background(), "search shoes")

	require.Len(t, obs.events, 2)
	assert.Equal(t, intent.ViewCart, obs.events[0].Intent)
	assert.False(t, obs.events[0].Recovered)
	assert.Equal(t, intent.ProductSearch, obs.events[1].Intent)
	assert.True(t, obs.events[1].Recovered)
}
