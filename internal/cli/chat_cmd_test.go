package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/clerk/internal/agent"
	"github.com/alexanderramin/clerk/internal/repository"
	"github.com/alexanderramin/clerk/internal/testutil"
)

func newTestChatSession(t *testing.T) (*chatSession, *repository.SQLiteQueryLogRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	app := &App{Session: agent.NewSession(database)}
	return &chatSession{app: app}, repository.NewSQLiteQueryLogRepo(database)
}

func TestChatTurnAnswersQuery(t *testing.T) {
	sess, _ := newTestChatSession(t)

	out := sess.turn("view cart")

	assert.Contains(t, out, "Agent: ")
	assert.Contains(t, out, "Your cart is empty.")
}

func TestChatTurnIgnoresBlankInput(t *testing.T) {
	sess, _ := newTestChatSession(t)

	assert.Equal(t, "", sess.turn("   "))
	assert.False(t, sess.wantExit)
}

func TestChatTurnQuit(t *testing.T) {
	sess, _ := newTestChatSession(t)

	out := sess.turn("quit")

	assert.True(t, sess.wantExit)
	assert.Contains(t, out, "Goodbye.")
}

func TestChatTurnHelp(t *testing.T) {
	sess, _ := newTestChatSession(t)

	out := sess.turn("help")

	assert.Contains(t, out, "QUERIES")
	assert.False(t, sess.wantExit)
}

func TestChatDashboardRoundTrip(t *testing.T) {
	sess, logRepo := newTestChatSession(t)
	ctx := context.Background()

	// Opening the dashboard switches modes without logging the turn yet.
	out := sess.turn("open dashboard")
	assert.True(t, sess.adminMode)
	assert.Contains(t, out, "Entering admin dashboard.")

	entries, err := logRepo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Admin commands answer with the admin prefix and stay in admin mode.
	out = sess.turn("guardrails")
	assert.True(t, sess.adminMode)
	assert.Contains(t, out, "Admin: ")
	assert.Contains(t, out, "Guardrails:")

	// Exit returns to chat mode and logs the opening query.
	out = sess.turn("exit")
	assert.False(t, sess.adminMode)
	assert.Contains(t, out, "Exited dashboard.")

	entries, err = logRepo.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "open dashboard", entries[0].Query)
	assert.Equal(t, "Exited dashboard.", entries[0].Response)
}

func TestChatQuitInsideAdminModeIsAnAdminCommand(t *testing.T) {
	sess, _ := newTestChatSession(t)

	sess.turn("open dashboard")
	out := sess.turn("quit")

	// "quit" is not an admin command; only "exit" leaves the dashboard.
	assert.True(t, sess.adminMode)
	assert.False(t, sess.wantExit)
	assert.Contains(t, out, "Unknown admin command.")
}

func TestRunPipedStopsAtQuit(t *testing.T) {
	sess, _ := newTestChatSession(t)

	in := strings.NewReader("view cart\nquit\nadd shoes to cart\n")
	var out strings.Builder
	err := sess.runPiped(in, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "Your cart is empty.")
	assert.Contains(t, out.String(), "Goodbye.")
	assert.NotContains(t, out.String(), "Multiple matches")
}

func TestRunPipedClosesDashboardAtEndOfInput(t *testing.T) {
	sess, logs := newTestChatSession(t)

	in := strings.NewReader("open dashboard\ninsights\n")
	var out strings.Builder
	err := sess.runPiped(in, &out)

	require.NoError(t, err)
	assert.False(t, sess.adminMode)
	assert.Contains(t, out.String(), "Exited dashboard.")

	entries, err := logs.List(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1, "the dashboard-opening turn is logged on close")
	assert.Equal(t, "open dashboard", entries[0].Query)
	assert.Equal(t, "Exited dashboard.", entries[0].Response)
}
