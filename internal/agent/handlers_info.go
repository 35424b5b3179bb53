package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/clerk/internal/policy"
	"github.com/alexanderramin/clerk/internal/recommend"
	"github.com/alexanderramin/clerk/internal/repository"
)

func (s *Session) handlePaymentInfo(ctx context.Context) (string, error) {
	profile, err := s.profile.Get(ctx)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Payment information: %s (never share full details).", profile.Payment), nil
}

func (s *Session) handlePaymentProcess() (string, error) {
	return "Payment processing simulated. Use BNPL option? Yes/No (demo: completed). Safe options: Credit, PayPal.", nil
}

func (s *Session) handleUpdateInfo(ctx context.Context, query string) (string, error) {
	lower := strings.ToLower(query)
	switch {
	case strings.Contains(lower, "name"):
		newName := extractAfter(query, "to")
		profile, err := s.profile.Get(ctx)
		if err != nil {
			return "", err
		}
		profile.Name = newName
		if err := s.profile.Update(ctx, profile); err != nil {
			return "", err
		}
		return fmt.Sprintf("Name updated to %s.", newName), nil
	case strings.Contains(lower, "address"):
		newAddr := extractAfter(query, "to")
		profile, err := s.profile.Get(ctx)
		if err != nil {
			return "", err
		}
		profile.Address = newAddr
		if err := s.profile.Update(ctx, profile); err != nil {
			return "", err
		}
		return fmt.Sprintf("Address updated to %s.", newAddr), nil
	default:
		return "Please specify what to update (name or address).", nil
	}
}

func (s *Session) handlePolicyFAQ(query string) (string, error) {
	if key := policy.MatchKey(query); key != "" {
		return policy.Text(key), nil
	}
	return policy.AllTexts(), nil
}

func (s *Session) handleWarranty() (string, error) {
	if !s.warrantySubscribed {
		return "Warranty claims require separate subscription. Please subscribe to proceed.", nil
	}
	return "Warranty claim processed. Next steps: Send item to repair center.", nil
}

func (s *Session) handleSizeFit(ctx context.Context, query string) (string, error) {
	// A query without a "for" clause yields an empty fragment, which matches
	// the whole catalog; the first product answers.
	name := extractAfter(strings.ToLower(query), "for")
	matches, err := s.products.FindByNameContains(ctx, name)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 || !matches[0].HasSize() {
		return "No size info available.", nil
	}
	product := matches[0]
	conv := policy.SizeConversion(product.Category, product.Size)
	return fmt.Sprintf("Recommended size: %s. Conversions: %s. Compatibility: Fits standard.",
		product.Size, conv), nil
}

func (s *Session) handleViewHistory(ctx context.Context) (string, error) {
	entries, err := s.log.List(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "No query history available yet.", nil
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("%s: %s - %s",
			e.CreatedAt.Format("2006-01-02 15:04:05"), e.Query, e.Response))
	}
	return "Query History:\n" + strings.Join(lines, "\n"), nil
}

func (s *Session) handleUnknown(ctx context.Context) (string, error) {
	itemIDs, err := s.cart.List(ctx)
	if err != nil {
		return "", err
	}
	if len(itemIDs) > 0 {
		return "Abandoned cart reminder: You have items in cart. Proceed to checkout? Also, redirecting to human support.", nil
	}
	return "Sorry, I can't handle this. Redirecting to human support with history.", nil
}

func (s *Session) handleProductSearch(ctx context.Context, query string) (string, error) {
	catalog, err := s.products.List(ctx)
	if err != nil {
		return "", err
	}
	orders, err := s.orders.List(ctx)
	if err != nil {
		return "", err
	}

	pastCategories := map[string]bool{}
	for _, order := range orders {
		for _, id := range order.ItemIDs {
			product, err := s.products.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					continue
				}
				return "", err
			}
			pastCategories[product.Category] = true
		}
	}

	return recommend.FormatResult(s.engine.Search(query, catalog, pastCategories)), nil
}

func (s *Session) handleCompare(ctx context.Context, query string) (string, error) {
	names := extractCompareNames(query)
	if len(names) < 2 {
		return "Please specify at least two products to compare, e.g., 'compare shoes and t-shirt'.", nil
	}
	catalog, err := s.products.List(ctx)
	if err != nil {
		return "", err
	}
	out, _ := recommend.Compare(names, catalog)
	return out, nil
}
