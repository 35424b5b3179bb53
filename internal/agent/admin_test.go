package agent

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdminExit(t *testing.T) {
	s := newTestSession(t)

	reply := s.HandleAdminCommand(context.Background(), "exit")

	assert.True(t, reply.Exit)
	assert.Empty(t, reply.Text)
}

func TestAdminChangePlan(t *testing.T) {
	s := newTestSession(t)

	reply := s.HandleAdminCommand(context.Background(), "change plan to premium")

	assert.False(t, reply.Exit)
	assert.Equal(t, "Plan changed. New features: [configured].", reply.Text)
}

func TestAdminConfigureFeaturesUnlocksWarranty(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	before := s.Respond(ctx, "warranty claim")
	assert.Equal(t, "Warranty claims require separate subscription. Please subscribe to proceed.", before.Text)

	reply := s.HandleAdminCommand(ctx, "configure features")
	assert.Equal(t, "Features configured. Added subscriptions.", reply.Text)
	assert.True(t, s.WarrantySubscribed())

	after := s.Respond(ctx, "warranty claim")
	assert.Equal(t, "Warranty claim processed. Next steps: Send item to repair center.", after.Text)
}

func TestAdminGuardrails(t *testing.T) {
	s := newTestSession(t)

	reply := s.HandleAdminCommand(context.Background(), "show guardrails")

	assert.Equal(t, "Guardrails: PII masked, refunds auto-approved under $50 (enforced).", reply.Text)
}

func TestAdminUnknownCommand(t *testing.T) {
	s := newTestSession(t)

	reply := s.HandleAdminCommand(context.Background(), "reboot the mainframe")

	assert.Equal(t, "Unknown admin command. Options: change plan, configure features, insights, guardrails.", reply.Text)
}

func TestAdminInsightsReflectLoggedTurns(t *testing.T) {
	s := newTestSession(t)
	ctx := context.Background()

	s.Respond(ctx, "view cart")
	s.Respond(ctx, "view cart please")
	s.Respond(ctx, "track order 1")

	reply := s.HandleAdminCommand(ctx, "show insights")

	assert.Contains(t, reply.Text, "Customer Insights:")
	assert.Contains(t, reply.Text, "- view_cart: 2 queries")
	assert.Contains(t, reply.Text, "- track_order: 1 queries")
}
