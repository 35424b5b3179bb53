package agent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/clerk/internal/db"
	"github.com/alexanderramin/clerk/internal/domain"
	"github.com/alexanderramin/clerk/internal/policy"
	"github.com/alexanderramin/clerk/internal/repository"
)

func (s *Session) handlePurchase(ctx context.Context) (string, error) {
	itemIDs, err := s.cart.List(ctx)
	if err != nil {
		return "", err
	}
	if len(itemIDs) == 0 {
		return "Cart is empty. Add items first.", nil
	}

	now := s.now()
	var orderID string
	// Order creation and cart clearing must land atomically.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		orders := repository.NewSQLiteOrderRepo(tx)
		cart := repository.NewSQLiteCartRepo(tx)

		id, err := orders.NextOrderID(ctx)
		if err != nil {
			return err
		}
		orderID = id

		if err := orders.Create(ctx, &domain.Order{
			ID:        id,
			ItemIDs:   itemIDs,
			CreatedAt: now,
			Status:    domain.OrderProcessing,
			Tracking:  fmt.Sprintf("TRACK-%d", 1000+s.rng.Intn(9000)),
		}); err != nil {
			return err
		}
		return cart.Clear(ctx)
	})
	if err != nil {
		return "", err
	}

	arrival := now.AddDate(0, 0, policy.DeliveryDays)
	return fmt.Sprintf("Purchase complete. Order ID: %s. Estimated arrival: %s",
		orderID, arrival.Format("2006-01-02")), nil
}

func (s *Session) handleReturn(ctx context.Context, query string) (string, error) {
	orderID, ok := extractOrderID(query)
	if !ok {
		return "Please provide order ID for return.", nil
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Order not found.", nil
		}
		return "", err
	}
	if order.AgeDays(s.now()) > policy.ReturnWindowDays {
		return "Sorry, returns not allowed after 30 days per policy.", nil
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return "", err
	}
	return "Return approved. Prepaid label: dummy_return_label.pdf. Drop off at nearest post office.", nil
}

func (s *Session) handleCancelOrder(ctx context.Context, query string) (string, error) {
	orderID, ok := extractOrderID(query)
	if !ok {
		return "Please provide order ID to cancel.", nil
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Order not found.", nil
		}
		return "", err
	}
	if order.AgeHours(s.now()) > policy.CancelWindowHours {
		return "Sorry, cancellations not allowed after 24 hours per policy.", nil
	}
	if err := s.orders.Delete(ctx, orderID); err != nil {
		return "", err
	}
	return "Order canceled successfully.", nil
}

func (s *Session) handleChangeOrder(ctx context.Context, query string) (string, error) {
	orderID, ok := extractOrderID(query)
	if !ok {
		return "Please provide order ID to change.", nil
	}
	if _, err := s.orders.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Order not found.", nil
		}
		return "", err
	}
	// Simulated acknowledgment only; the order is not mutated.
	return "Order changed successfully. New items: [updated list].", nil
}

func (s *Session) handleTrackOrder(ctx context.Context, query string) (string, error) {
	orderID, ok := extractOrderID(query)
	if !ok {
		return "Please provide order ID.", nil
	}
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "Order not found.", nil
		}
		return "", err
	}
	daysLeft := policy.DeliveryDays - order.AgeDays(s.now())
	if daysLeft < 0 {
		daysLeft = 0
	}
	return fmt.Sprintf("Order status: %s. Tracking: %s. Arrival in approx %d days.",
		order.Status, order.Tracking, daysLeft), nil
}

func (s *Session) handleReorder(ctx context.Context) (string, error) {
	last, err := s.orders.Latest(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "No previous orders.", nil
		}
		return "", err
	}

	names, err := s.resolveNames(ctx, last.ItemIDs)
	if err != nil {
		return "", err
	}
	if err := s.cart.AddAll(ctx, last.ItemIDs); err != nil {
		return "", err
	}
	return fmt.Sprintf("Reordered: %s. Subscription: Monthly (pause/cancel via 'subscription pause').",
		strings.Join(names, ", ")), nil
}
