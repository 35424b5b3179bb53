package cli

import (
	prompt "github.com/c-bata/go-prompt"
)

// customerSuggestions are example queries offered in chat mode. They seed the
// phrasing; free-form input works the same.
var customerSuggestions = []prompt.Suggest{
	{Text: "search shoes under 100", Description: "Find products with a price cap"},
	{Text: "recommend coffee", Description: "Personalized recommendations"},
	{Text: "compare shoes and t-shirt", Description: "Side-by-side comparison"},
	{Text: "add shoes to cart", Description: "Add a product"},
	{Text: "remove shoes from cart", Description: "Remove one unit"},
	{Text: "view cart", Description: "List cart contents"},
	{Text: "checkout", Description: "Place an order"},
	{Text: "track order 1", Description: "Shipment status"},
	{Text: "cancel order 1", Description: "Cancel within 24 hours"},
	{Text: "return order 1", Description: "Return within 30 days"},
	{Text: "reorder", Description: "Repeat your last order"},
	{Text: "any coupons", Description: "Discount eligibility"},
	{Text: "payment info", Description: "Masked payment details"},
	{Text: "shipping policy", Description: "Policies and FAQ"},
	{Text: "what size for shoes", Description: "Size and fit guidance"},
	{Text: "view my history", Description: "Past queries"},
	{Text: "open dashboard", Description: "Admin tools"},
	{Text: "help", Description: "Show example queries"},
	{Text: "quit", Description: "Leave the chat"},
}

// adminSuggestions are offered inside the admin sub-session.
var adminSuggestions = []prompt.Suggest{
	{Text: "change plan", Description: "Switch the store plan"},
	{Text: "configure features", Description: "Enable subscription features"},
	{Text: "insights", Description: "Customer insights report"},
	{Text: "guardrails", Description: "Show enforcement settings"},
	{Text: "exit", Description: "Back to the chat"},
}

func (s *chatSession) completer(d prompt.Document) []prompt.Suggest {
	pool := customerSuggestions
	if s.adminMode {
		pool = adminSuggestions
	}
	if d.TextBeforeCursor() == "" {
		return nil
	}
	return prompt.FilterHasPrefix(pool, d.TextBeforeCursor(), true)
}
