// Package intent classifies free-text storefront queries into a closed set of
// intents using ordered keyword and pattern rules.
package intent

// Intent is the symbolic action category a query resolves to.
type Intent string

const (
	Dashboard           Intent = "dashboard"
	Return              Intent = "return"
	ChangeOrder         Intent = "change_order"
	ViewCart            Intent = "view_cart"
	Purchase            Intent = "purchase"
	PaymentInfo         Intent = "payment_info"
	UpdateInfo          Intent = "update_info"
	CancelOrder         Intent = "cancel_order"
	PolicyFAQ           Intent = "policy_faq"
	Warranty            Intent = "warranty"
	PaymentProcess      Intent = "payment_process"
	TrackOrder          Intent = "track_order"
	ProductSearch       Intent = "product_search"
	Compare             Intent = "compare"
	AddToCart           Intent = "add_to_cart"
	RemoveFromCart      Intent = "remove_from_cart"
	Coupon              Intent = "coupon"
	SizeFit             Intent = "size_fit"
	ReorderSubscription Intent = "reorder_subscription"
	ViewHistory         Intent = "view_history"
	Unknown             Intent = "unknown"
)

// All lists every intent the classifier can produce, in rule-priority order
// with the fallback last.
var All = []Intent{
	Dashboard, Return, ChangeOrder, ViewCart, Purchase, PaymentInfo,
	UpdateInfo, CancelOrder, PolicyFAQ, Warranty, PaymentProcess, TrackOrder,
	ProductSearch, Compare, AddToCart, RemoveFromCart, Coupon, SizeFit,
	ReorderSubscription, ViewHistory, Unknown,
}
