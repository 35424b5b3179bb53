package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clerk/internal/domain"
)

// FormatChatWelcome renders the banner shown when the chat shell starts.
func FormatChatWelcome() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(StylePurple.Render("  clerk") + "\n")
	b.WriteString(StyleDim.Render("  ─────────────────────────────") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Ask about products, orders, your cart, or store policies.") + "\n")
	b.WriteString("\n")
	b.WriteString("  " + StyleGreen.Render("search shoes under 100") + StyleDim.Render("   Find products") + "\n")
	b.WriteString("  " + StyleGreen.Render("add shoes to cart") + StyleDim.Render("        Build your cart") + "\n")
	b.WriteString("  " + StyleGreen.Render("checkout") + StyleDim.Render("                 Place an order") + "\n")
	b.WriteString("  " + StyleGreen.Render("track order 1") + StyleDim.Render("            Check a shipment") + "\n")
	b.WriteString("  " + StyleGreen.Render("open dashboard") + StyleDim.Render("           Admin tools") + "\n")
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("  Type 'quit' to leave.") + "\n")
	b.WriteString("\n")

	return b.String()
}

// FormatAgentReply renders one agent response with the spoken-turn prefix.
// Multi-line responses keep the prefix on the first line only.
func FormatAgentReply(text string) string {
	return StyleBlue.Render("Agent: ") + text + "\n"
}

// FormatAdminWelcome renders the banner shown when the admin dashboard opens.
func FormatAdminWelcome() string {
	var b strings.Builder
	b.WriteString(StyleYellow.Render("Entering admin dashboard.") + "\n")
	b.WriteString(StyleDim.Render("Commands: change plan, configure features, insights, guardrails, exit") + "\n")
	return b.String()
}

// FormatAdminReply renders one admin command response.
func FormatAdminReply(text string) string {
	return StyleYellow.Render("Admin: ") + text + "\n"
}

// FormatGoodbye renders the quit message.
func FormatGoodbye() string {
	return Dim("Goodbye.")
}

// chatCategory groups example queries under a section header.
type chatCategory struct {
	title   string
	queries [][]string
}

func renderChatCategory(cat chatCategory) string {
	var b strings.Builder
	b.WriteString("\n " + StyleHeader.Render(strings.ToUpper(cat.title)) + "\n")
	for _, q := range cat.queries {
		b.WriteString(fmt.Sprintf("  %-28s %s\n",
			StyleGreen.Render(q[0]),
			StyleDim.Render(q[1])))
	}
	return b.String()
}

// FormatChatHelp renders the categorized query reference.
func FormatChatHelp() string {
	categories := []chatCategory{
		{
			title: "Shopping",
			queries: [][]string{
				{"search shoes under 100", "Find products with a price cap"},
				{"recommend coffee in blue", "Recommendations with a color filter"},
				{"compare shoes and t-shirt", "Side-by-side comparison"},
				{"what size for shoes", "Size and fit guidance"},
			},
		},
		{
			title: "Cart & Orders",
			queries: [][]string{
				{"add shoes to cart", "Add a product"},
				{"remove shoes from cart", "Remove one unit"},
				{"view cart", "List cart contents"},
				{"checkout", "Place an order from the cart"},
				{"track order 1", "Shipment status"},
				{"cancel order 1", "Cancel within 24 hours"},
				{"return order 1", "Return within 30 days"},
				{"reorder", "Repeat your last order"},
			},
		},
		{
			title: "Account",
			queries: [][]string{
				{"payment info", "Masked payment details"},
				{"change name to ...", "Update profile name"},
				{"update address to ...", "Update shipping address"},
				{"view my history", "Past queries and responses"},
			},
		},
		{
			title: "Store",
			queries: [][]string{
				{"shipping policy", "Policies and FAQ"},
				{"any coupons", "Discount eligibility"},
				{"open dashboard", "Admin tools"},
			},
		},
	}

	var b strings.Builder
	for _, cat := range categories {
		b.WriteString(renderChatCategory(cat))
	}
	b.WriteString("\n" + StyleDim.Render("Free-form phrasing works too; these are just examples."))

	return RenderBox("Queries", b.String())
}

// FormatProductTable renders the catalog as an aligned table.
func FormatProductTable(products []domain.Product) string {
	headers := []string{"ID", "Name", "Price", "Category", "Color", "Size"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			fmt.Sprintf("%d", p.ID),
			Bold(p.Name),
			fmt.Sprintf("$%g", p.Price),
			p.Category,
			orDash(p.Color),
			orDash(p.Size),
		})
	}
	return RenderTable(headers, rows)
}

// FormatOrderTable renders order history with a colored status column.
func FormatOrderTable(orders []*domain.Order) string {
	headers := []string{"ID", "Items", "Placed", "Status", "Tracking"}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			Bold(o.ID),
			fmt.Sprintf("%d", len(o.ItemIDs)),
			o.CreatedAt.Format("2006-01-02"),
			StatusIndicator(o.Status),
			o.Tracking,
		})
	}
	return RenderTable(headers, rows)
}

// FormatProfile renders the user profile block.
func FormatProfile(p *domain.UserProfile) string {
	var b strings.Builder
	b.WriteString(Header("Profile") + "\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Name:"), Bold(p.Name)))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Address:"), p.Address))
	b.WriteString(fmt.Sprintf("%s  %s\n", Dim("Payment:"), p.Payment))
	return b.String()
}

func orDash(s string) string {
	if s == "" {
		return Dim("—")
	}
	return s
}
