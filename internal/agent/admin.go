package agent

import (
	"context"
	"strings"

	"github.com/alexanderramin/clerk/internal/insight"
)

// Admin sub-session commands, matched in priority order like the main
// classifier: first containment wins.

// AdminReply is the outcome of one admin command.
type AdminReply struct {
	Text string
	Exit bool
}

// HandleAdminCommand executes one admin dashboard command. Output is printed
// directly by the host shell and is not recorded in the query log.
func (s *Session) HandleAdminCommand(ctx context.Context, command string) AdminReply {
	lower := strings.ToLower(command)
	switch {
	case lower == "exit":
		return AdminReply{Exit: true}
	case strings.Contains(lower, "change plan"):
		return AdminReply{Text: "Plan changed. New features: [configured]."}
	case strings.Contains(lower, "configure features"):
		// Subscriptions include warranty coverage; the customer-facing
		// warranty handler unlocks once this runs.
		s.warrantySubscribed = true
		return AdminReply{Text: "Features configured. Added subscriptions."}
	case strings.Contains(lower, "insights"):
		entries, err := s.log.List(ctx)
		if err != nil {
			return AdminReply{Text: apology(err)}
		}
		return AdminReply{Text: insight.FormatReport(insight.Aggregate(entries))}
	case strings.Contains(lower, "guardrails"):
		return AdminReply{Text: "Guardrails: PII masked, refunds auto-approved under $50 (enforced)."}
	default:
		return AdminReply{Text: "Unknown admin command. Options: change plan, configure features, insights, guardrails."}
	}
}
