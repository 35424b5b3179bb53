package intent

import (
	"regexp"
	"strings"
)

// The add/remove rules need word boundaries so "addition" or "removed" in an
// unrelated sentence do not hijack classification.
var (
	addToCartRe      = regexp.MustCompile(`\badd\b.*\bto\b \bcart\b`)
	removeFromCartRe = regexp.MustCompile(`\bremove\b.*\bfrom\b \bcart\b`)
)

// rule pairs a predicate over the lowercased query with the intent it yields.
type rule struct {
	match  func(q string) bool
	intent Intent
}

func contains(subs ...string) func(string) bool {
	return func(q string) bool {
		for _, s := range subs {
			if strings.Contains(q, s) {
				return true
			}
		}
		return false
	}
}

// rules are evaluated in order and the first match wins. The ordering is
// load-bearing: a query mentioning both "cancel order" and "policy" must
// resolve the same way every time.
var rules = []rule{
	{contains("dashboard"), Dashboard},
	{contains("return"), Return},
	{contains("change order", "modify order"), ChangeOrder},
	{contains("view cart"), ViewCart},
	{contains("purchase", "buy", "checkout"), Purchase},
	{contains("payment info"), PaymentInfo},
	{contains("change name", "update address"), UpdateInfo},
	{contains("cancel order"), CancelOrder},
	{func(q string) bool {
		return strings.Contains(q, "policy") || strings.Contains(q, "faq") ||
			strings.Contains(q, "payment methods") || strings.Contains(q, "payment options") ||
			(strings.Contains(q, "accepted") && strings.Contains(q, "payment"))
	}, PolicyFAQ},
	{contains("warranty"), Warranty},
	{contains("payment processing", "finish payment"), PaymentProcess},
	{contains("track order", "when will my order arrive"), TrackOrder},
	{contains("search", "show me", "recommend"), ProductSearch},
	{contains("compare"), Compare},
	{func(q string) bool { return addToCartRe.MatchString(q) }, AddToCart},
	{func(q string) bool { return removeFromCartRe.MatchString(q) }, RemoveFromCart},
	{contains("coupon", "promo"), Coupon},
	{contains("size", "fit", "compatibility"), SizeFit},
	{contains("reorder", "subscription"), ReorderSubscription},
	{func(q string) bool {
		return (strings.Contains(q, "query") || strings.Contains(q, "view")) &&
			(strings.Contains(q, "chats") || strings.Contains(q, "history") || strings.Contains(q, "log"))
	}, ViewHistory},
}

// Classify maps a raw query to exactly one intent. It is a pure function of
// the input string; matching is case-insensitive.
func Classify(query string) Intent {
	q := strings.ToLower(query)
	for _, r := range rules {
		if r.match(q) {
			return r.intent
		}
	}
	return Unknown
}
