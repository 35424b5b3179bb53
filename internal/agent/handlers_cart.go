package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/clerk/internal/domain"
	"github.com/alexanderramin/clerk/internal/policy"
	"github.com/alexanderramin/clerk/internal/repository"
)

func (s *Session) handleViewCart(ctx context.Context) (string, error) {
	itemIDs, err := s.cart.List(ctx)
	if err != nil {
		return "", err
	}
	if len(itemIDs) == 0 {
		return "Your cart is empty.", nil
	}
	names, err := s.resolveNames(ctx, itemIDs)
	if err != nil {
		return "", err
	}
	return "Cart items: " + strings.Join(names, ", "), nil
}

func (s *Session) handleAddToCart(ctx context.Context, query string) (string, error) {
	name, ok := extractCartProduct(query, false)
	if !ok {
		return "Please specify the product to add.", nil
	}
	product, response, err := s.resolveProduct(ctx, name)
	if err != nil || product == nil {
		return response, err
	}
	if err := s.cart.Add(ctx, product.ID); err != nil {
		return "", err
	}
	return product.Name + " added to cart.", nil
}

func (s *Session) handleRemoveFromCart(ctx context.Context, query string) (string, error) {
	name, ok := extractCartProduct(query, true)
	if !ok {
		return "Please specify the product to remove.", nil
	}
	product, response, err := s.resolveProduct(ctx, name)
	if err != nil || product == nil {
		return response, err
	}
	if err := s.cart.RemoveOne(ctx, product.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Product not in cart.", nil
		}
		return "", err
	}
	return product.Name + " removed from cart.", nil
}

func (s *Session) handleCoupon(ctx context.Context) (string, error) {
	itemIDs, err := s.cart.List(ctx)
	if err != nil {
		return "", err
	}
	var total float64
	for _, id := range itemIDs {
		product, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return "", err
		}
		total += product.Price
	}
	if total > policy.CouponMinTotal {
		discounted := total * (1 - float64(policy.CouponDiscountPct)/100)
		return fmt.Sprintf("Applied %d%% discount. New total: $%.2f.",
			policy.CouponDiscountPct, discounted), nil
	}
	return fmt.Sprintf("No eligible coupons. Check eligibility: Orders over $%.0f.",
		policy.CouponMinTotal), nil
}

// resolveProduct matches the extracted name against the catalog by substring
// containment. Zero matches and ambiguous matches yield user-facing
// responses with a nil product; callers proceed only on a single match.
func (s *Session) resolveProduct(ctx context.Context, name string) (*domain.Product, string, error) {
	matches, err := s.products.FindByNameContains(ctx, name)
	if err != nil {
		return nil, "", err
	}
	switch len(matches) {
	case 0:
		return nil, "Product not found.", nil
	case 1:
		return &matches[0], "", nil
	default:
		names := make([]string, 0, len(matches))
		for _, p := range matches {
			names = append(names, p.Name)
		}
		return nil, fmt.Sprintf("Multiple matches: %s. Please specify.",
			strings.Join(names, ", ")), nil
	}
}

// resolveNames maps product ids to catalog names, silently skipping ids that
// no longer resolve.
func (s *Session) resolveNames(ctx context.Context, itemIDs []int) ([]string, error) {
	var names []string
	for _, id := range itemIDs {
		product, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				continue
			}
			return nil, err
		}
		names = append(names, product.Name)
	}
	return names, nil
}
