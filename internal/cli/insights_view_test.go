package cli

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clerk/internal/agent"
	"github.com/alexanderramin/clerk/internal/testutil"
)

func newTestInsightsModel(t *testing.T) *insightsModel {
	t.Helper()
	database := testutil.NewTestDB(t)
	app := &App{Session: agent.NewSession(database)}
	return newInsightsModel(app)
}

func TestInsightsViewEmptyLog(t *testing.T) {
	m := newTestInsightsModel(t)

	msg := m.loadData()()
	updated, _ := m.Update(msg)

	view := updated.View()
	assert.Contains(t, view, "CUSTOMER INSIGHTS")
	assert.Contains(t, view, "No queries logged yet.")
}

func TestInsightsViewTalliesLoggedTurns(t *testing.T) {
	m := newTestInsightsModel(t)
	ctx := context.Background()

	m.app.Session.Respond(ctx, "view cart")
	m.app.Session.Respond(ctx, "view cart please")
	m.app.Session.Respond(ctx, "track order 1")

	msg := m.loadData()()
	updated, _ := m.Update(msg)

	view := updated.View()
	assert.Contains(t, view, "view_cart")
	assert.Contains(t, view, "track_order")
	assert.Contains(t, view, "3 queries total")
}

func TestInsightsQuitKey(t *testing.T) {
	m := newTestInsightsModel(t)
	m.loading = false

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestInsightsRefreshReloads(t *testing.T) {
	m := newTestInsightsModel(t)
	m.loading = false

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}})

	assert.True(t, m.loading)
	require.NotNil(t, cmd)
}
