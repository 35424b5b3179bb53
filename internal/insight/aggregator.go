// Package insight derives admin-facing reports from the session query log.
package insight

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/clerk/internal/domain"
	"github.com/alexanderramin/clerk/internal/intent"
)

// IntentCount is one tally row of the insights report.
type IntentCount struct {
	Intent intent.Intent
	Count  int
}

// Aggregate replays every logged query through the classifier and tallies the
// resulting intents. The report is derived fresh from the log on every call,
// sorted by count descending with intent name as tie-break.
func Aggregate(entries []*domain.QueryLogEntry) []IntentCount {
	counts := map[intent.Intent]int{}
	for _, e := range entries {
		counts[intent.Classify(e.Query)]++
	}

	out := make([]IntentCount, 0, len(counts))
	for in, c := range counts {
		out = append(out, IntentCount{Intent: in, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Intent < out[j].Intent
	})
	return out
}

// FormatReport renders the admin insights block: per-intent tallies plus the
// simulated trend, alert, and campaign lines.
func FormatReport(tallies []IntentCount) string {
	var b strings.Builder
	b.WriteString("Customer Insights:")
	for _, t := range tallies {
		b.WriteString(fmt.Sprintf("\n- %s: %d queries", t.Intent, t.Count))
	}
	b.WriteString("\nTrending: Frequent searches for shoes.")
	b.WriteString("\nAlerts: Out-of-stock mentions (simulated).")
	b.WriteString("\nAutomated Campaign: 'Flash sale on shoes! Buy now.'")
	return b.String()
}
