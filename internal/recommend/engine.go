// Package recommend implements product search with price/color filtering,
// purchase-history personalization, random sampling, and cross-sell/upsell
// selection, plus side-by-side product comparison.
//
// The engine is pure over catalog data: callers load products and order
// history and inject the randomness source, so tests can assert exact picks.
package recommend

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/alexanderramin/clerk/internal/domain"
	"github.com/alexanderramin/clerk/internal/policy"
)

// Engine holds the injected randomness source.
type Engine struct {
	rng *rand.Rand
}

// New creates an Engine using the given randomness source.
func New(rng *rand.Rand) *Engine {
	return &Engine{rng: rng}
}

// Result is the outcome of a search: sampled recommendations plus optional
// cross-sell and upsell suggestions. Err carries a user-facing message for
// the malformed/missing filter paths instead of a product set.
type Result struct {
	Recommendations []domain.Product
	CrossSell       *domain.Product
	Upsell          *domain.Product
	Err             string
}

// Query noise stripped before keyword matching.
var ignoreWords = map[string]bool{
	"show": true, "me": true, "search": true, "recommend": true,
	"for": true, "please": true,
}

// Search runs the full pipeline over the catalog. pastCategories is the set
// of categories seen in order history; when restricting to them keeps at
// least one result, the restriction applies (prioritization, not hard
// filter).
func (e *Engine) Search(query string, catalog []domain.Product, pastCategories map[string]bool) Result {
	terms := strings.Fields(strings.ToLower(query))
	filtered := append([]domain.Product(nil), catalog...)
	reserved := map[string]bool{}

	if idx := indexOf(terms, "under"); idx >= 0 {
		if idx+1 >= len(terms) {
			return Result{Err: "Missing price after 'under'."}
		}
		raw := strings.Replace(terms[idx+1], "$", "", 1)
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil || maxPrice < 0 || math.IsInf(maxPrice, 0) || math.IsNaN(maxPrice) {
			return Result{Err: "Invalid price format. Please use a number like $100."}
		}
		filtered = filterProducts(filtered, func(p domain.Product) bool {
			return p.Price < maxPrice
		})
		reserved["under"] = true
		reserved[terms[idx+1]] = true
	}

	if idx := indexOf(terms, "in"); idx >= 0 {
		if idx+1 >= len(terms) {
			return Result{Err: "Missing color after 'in'."}
		}
		color := terms[idx+1]
		filtered = filterProducts(filtered, func(p domain.Product) bool {
			return p.Color == color
		})
		reserved["in"] = true
		reserved[color] = true
	}

	var keywords []string
	for _, t := range terms {
		if reserved[t] || ignoreWords[t] || strings.HasPrefix(t, "$") {
			continue
		}
		keywords = append(keywords, t)
	}
	if len(keywords) > 0 {
		filtered = filterProducts(filtered, func(p domain.Product) bool {
			for _, k := range keywords {
				if strings.Contains(strings.ToLower(p.Name), k) ||
					strings.Contains(p.Category, k) ||
					strings.Contains(p.Color, k) {
					return true
				}
			}
			return false
		})
	}

	if len(filtered) == 0 {
		return Result{Err: "No products found. Try different search."}
	}

	if len(pastCategories) > 0 {
		personalized := filterProducts(filtered, func(p domain.Product) bool {
			return pastCategories[p.Category]
		})
		if len(personalized) > 0 {
			filtered = personalized
		}
	}

	recs := e.sample(filtered, policy.MaxRecommendations)

	return Result{
		Recommendations: recs,
		CrossSell:       e.pickCrossSell(recs, catalog),
		Upsell:          e.pickUpsell(recs, catalog),
	}
}

// pickCrossSell suggests a random electronics accessory when any sampled
// recommendation is footwear.
func (e *Engine) pickCrossSell(recs, catalog []domain.Product) *domain.Product {
	hasShoes := false
	for _, p := range recs {
		if p.Category == "shoes" {
			hasShoes = true
			break
		}
	}
	if !hasShoes {
		return nil
	}
	electronics := filterProducts(catalog, func(p domain.Product) bool {
		return p.Category == "electronics"
	})
	if len(electronics) == 0 {
		return nil
	}
	pick := electronics[e.rng.Intn(len(electronics))]
	return &pick
}

// pickUpsell scans recommendations in order; the first one with any strictly
// pricier same-category alternative yields a random pick from those
// alternatives. First match wins, not best match.
func (e *Engine) pickUpsell(recs, catalog []domain.Product) *domain.Product {
	for _, rec := range recs {
		alternatives := filterProducts(catalog, func(p domain.Product) bool {
			return p.Category == rec.Category && p.Price > rec.Price
		})
		if len(alternatives) > 0 {
			pick := alternatives[e.rng.Intn(len(alternatives))]
			return &pick
		}
	}
	return nil
}

// sample draws up to n products uniformly without replacement.
func (e *Engine) sample(products []domain.Product, n int) []domain.Product {
	if n > len(products) {
		n = len(products)
	}
	idx := e.rng.Perm(len(products))[:n]
	out := make([]domain.Product, 0, n)
	for _, i := range idx {
		out = append(out, products[i])
	}
	return out
}

// FormatResult renders a search result the way the chat surface presents it.
func FormatResult(r Result) string {
	if r.Err != "" {
		return r.Err
	}
	lines := make([]string, 0, len(r.Recommendations))
	for _, p := range r.Recommendations {
		lines = append(lines, fmt.Sprintf("%s - $%g", p.Name, p.Price))
	}
	out := "Search results/recommendations:\n" + strings.Join(lines, "\n")
	if r.CrossSell != nil {
		out += fmt.Sprintf("\nSuggested accessory: %s - $%g", r.CrossSell.Name, r.CrossSell.Price)
	}
	if r.Upsell != nil {
		out += fmt.Sprintf("\nUpsell suggestion: %s - $%g (higher quality alternative)", r.Upsell.Name, r.Upsell.Price)
	}
	return out
}

func indexOf(terms []string, term string) int {
	for i, t := range terms {
		if t == term {
			return i
		}
	}
	return -1
}

func filterProducts(products []domain.Product, keep func(domain.Product) bool) []domain.Product {
	var out []domain.Product
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}
