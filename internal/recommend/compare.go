package recommend

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/clerk/internal/domain"
)

// Compare resolves the given name fragments against the catalog (first
// substring match each) and renders a pipe-delimited attribute grid with one
// column per resolved product. At least two products must resolve.
func Compare(names []string, catalog []domain.Product) (string, bool) {
	var prods []domain.Product
	for _, name := range names {
		for _, p := range catalog {
			if strings.Contains(strings.ToLower(p.Name), name) {
				prods = append(prods, p)
				break
			}
		}
	}
	if len(prods) < 2 {
		return "Not enough products found for comparison.", false
	}

	headers := []string{"Attribute"}
	for _, p := range prods {
		headers = append(headers, p.Name)
	}

	rows := [][]string{
		attributeRow("Price", prods, func(p domain.Product) string { return fmt.Sprintf("$%g", p.Price) }),
		attributeRow("Category", prods, func(p domain.Product) string { return p.Category }),
		attributeRow("Color", prods, func(p domain.Product) string { return orNA(p.Color) }),
		attributeRow("Size", prods, func(p domain.Product) string { return orNA(p.Size) }),
	}

	var b strings.Builder
	b.WriteString("Comparison:\n")
	b.WriteString(strings.Join(headers, " | "))
	for _, row := range rows {
		b.WriteString("\n")
		b.WriteString(strings.Join(row, " | "))
	}
	return b.String(), true
}

func attributeRow(label string, prods []domain.Product, value func(domain.Product) string) []string {
	row := []string{label}
	for _, p := range prods {
		row = append(row, value(p))
	}
	return row
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
