// Package policy holds the static store configuration: policy texts, the
// size-conversion table, and the business constants derived from them.
package policy

import "strings"

// Business constants. The windows mirror the published policy texts below.
const (
	ReturnWindowDays   = 30
	CancelWindowHours  = 24
	DeliveryDays       = 7
	CouponMinTotal     = 100.0
	CouponDiscountPct  = 10
	MaxRecommendations = 3
)

// Keys lists the policy keys in lookup-priority order. Query matching scans
// this slice in order and the first key contained in the query wins.
var Keys = []string{"shipping", "returns", "warranty", "cancellations", "faq"}

var texts = map[string]string{
	"shipping":      "Standard shipping: 5-7 business days. Free over $50.",
	"returns":       "Returns allowed within 30 days of purchase. No returns on sale items.",
	"warranty":      "1-year warranty on electronics. Claims require proof of purchase.",
	"cancellations": "Orders can be canceled within 24 hours of placement.",
	"faq":           "Q: How do I track my order? A: Use order ID. Q: Payment options? A: Credit card, BNPL (simulated).",
}

// Text returns the policy text for key, or "" when the key is unknown.
func Text(key string) string {
	return texts[key]
}

// MatchKey returns the first policy key contained in the lowercased query,
// or "" when none matches.
func MatchKey(query string) string {
	q := strings.ToLower(query)
	for _, k := range Keys {
		if strings.Contains(q, k) {
			return k
		}
	}
	return ""
}

// AllTexts renders every policy as "Key: text" lines in canonical order.
func AllTexts() string {
	var b strings.Builder
	for i, k := range Keys {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(strings.ToUpper(k[:1]) + k[1:] + ": " + texts[k])
	}
	return b.String()
}

var sizeConversions = map[string]map[string]string{
	"shoes":    {"US 10": "EU 43, UK 9"},
	"clothing": {"M": "EU 40, UK 12"},
}

// SizeConversion looks up the conversion string for (category, size).
// Returns "No conversion" when the pair has no table entry.
func SizeConversion(category, size string) string {
	if conv, ok := sizeConversions[category][size]; ok {
		return conv
	}
	return "No conversion"
}
