package agent

import (
	"regexp"
	"strings"
)

// Extractors are intentionally simplistic string operations: substring after
// a literal keyword, regex capture between delimiters, split on "and". Their
// delimiters and failure fallbacks are part of the contract and are not to
// be made smarter.

var (
	addCaptureRe    = regexp.MustCompile(`\badd\b\s*(.*?)\s*\bto\b \bcart\b`)
	removeCaptureRe = regexp.MustCompile(`\bremove\b\s*(.*?)\s*\bfrom\b \bcart\b`)
)

// extractOrderID takes the substring following the last literal "order" in
// the query. ok is false when the keyword is absent or nothing follows it.
func extractOrderID(query string) (string, bool) {
	if !strings.Contains(query, "order") {
		return "", false
	}
	parts := strings.Split(query, "order")
	id := strings.TrimSpace(parts[len(parts)-1])
	if id == "" {
		return "", false
	}
	return id, true
}

// extractCartProduct captures the phrase between "add"/"remove" and
// "to cart"/"from cart" in the lowercased query.
func extractCartProduct(query string, removing bool) (string, bool) {
	re := addCaptureRe
	if removing {
		re = removeCaptureRe
	}
	m := re.FindStringSubmatch(strings.ToLower(query))
	if m == nil {
		return "", false
	}
	name := strings.TrimSpace(m[1])
	if name == "" {
		return "", false
	}
	return name, true
}

// extractAfter returns the trimmed substring following the last occurrence
// of the keyword, or "" when the keyword is absent.
func extractAfter(query, keyword string) string {
	if !strings.Contains(query, keyword) {
		return ""
	}
	parts := strings.Split(query, keyword)
	return strings.TrimSpace(parts[len(parts)-1])
}

// extractCompareNames strips "compare" and commas from the lowercased query
// and splits the remainder on "and".
func extractCompareNames(query string) []string {
	clean := strings.ToLower(query)
	clean = strings.ReplaceAll(clean, "compare", "")
	clean = strings.ReplaceAll(clean, ",", "")
	clean = strings.TrimSpace(clean)

	var names []string
	for _, n := range strings.Split(clean, "and") {
		names = append(names, strings.TrimSpace(n))
	}
	return names
}
