package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_RuleTable(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  Intent
	}{
		{"dashboard", "open the dashboard", Dashboard},
		{"return", "I want to return order 3", Return},
		{"returns policy wins over policy", "what is your returns policy", Return},
		{"change order", "change order 2", ChangeOrder},
		{"modify order", "please modify order 2", ChangeOrder},
		{"view cart", "view cart", ViewCart},
		{"purchase", "purchase now", Purchase},
		{"buy", "buy it", Purchase},
		{"checkout", "go to checkout", Purchase},
		{"payment info", "show my payment info", PaymentInfo},
		{"change name", "change name to Alice", UpdateInfo},
		{"update address", "update address to 9 Elm Ave", UpdateInfo},
		{"cancel order", "cancel order 4", CancelOrder},
		{"policy", "shipping policy please", PolicyFAQ},
		{"faq", "show the faq", PolicyFAQ},
		{"payment methods", "what payment methods do you take", PolicyFAQ},
		{"accepted payment", "what payment types are accepted", PolicyFAQ},
		{"warranty", "warranty claim", Warranty},
		{"payment processing", "start payment processing", PaymentProcess},
		{"finish payment", "finish payment please", PaymentProcess},
		{"track order", "track order 1", TrackOrder},
		{"arrival phrasing", "when will my order arrive", TrackOrder},
		{"search", "search shoes under $50", ProductSearch},
		{"show me", "show me coffee", ProductSearch},
		{"recommend", "recommend something in blue", ProductSearch},
		{"compare", "compare shoes and t-shirt", Compare},
		{"add to cart", "add red t-shirt to cart", AddToCart},
		{"remove from cart", "remove red t-shirt from cart", RemoveFromCart},
		{"coupon", "any coupon for me", Coupon},
		{"promo", "promo codes?", Coupon},
		{"size", "what size for blue running shoes", SizeFit},
		{"compatibility", "compatibility of laptop charger", SizeFit},
		{"reorder", "reorder my usual", ReorderSubscription},
		{"subscription", "pause subscription", ReorderSubscription},
		{"view history", "view my chat history", ViewHistory},
		{"query log", "query log please", ViewHistory},
		{"unknown", "tell me a joke", Unknown},
		{"empty", "", Unknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.query))
		})
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	assert.Equal(t, ViewCart, Classify("VIEW CART"))
	assert.Equal(t, AddToCart, Classify("ADD Shoes TO CART"))
}

// Priority is total and deterministic: "view cart" beats every later rule
// regardless of other keywords in the query.
func TestClassify_ViewCartPriority(t *testing.T) {
	queries := []string{
		"view cart",
		"view cart and search for shoes",
		"view cart before checkout",
		"view cart, any coupon?",
		"view cart then compare shoes and t-shirt",
	}
	for _, q := range queries {
		assert.Equal(t, ViewCart, Classify(q), "query %q", q)
	}
}

func TestClassify_OrderedConflicts(t *testing.T) {
	tests := []struct {
		query string
		want  Intent
	}{
		// "cancel order" rule sits before the policy rule.
		{"cancel order 2 per your cancellations policy", CancelOrder},
		// "return" sits before everything except dashboard.
		{"return order 1 and show faq", Return},
		// purchase beats add-to-cart pattern.
		{"buy and add shoes to cart", Purchase},
		// search beats compare.
		{"search and compare coffee", ProductSearch},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Classify(tc.query), "query %q", tc.query)
	}
}

func TestClassify_PureFunction(t *testing.T) {
	q := "add blue running shoes to cart"
	first := Classify(q)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Classify(q))
	}
}
