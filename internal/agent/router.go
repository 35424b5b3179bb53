package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/clerk/internal/intent"
)

// Reply is the outcome of one turn. EnterDashboard signals the host shell to
// switch into the admin sub-session instead of printing a response; in that
// case nothing is logged until ExitDashboard runs.
type Reply struct {
	Intent         intent.Intent
	Text           string
	EnterDashboard bool
}

// Respond classifies the query, runs its handler, appends the turn to the
// query log, and returns the response. Any panic or handler error is
// converted into the generic apology response; the session loop never dies
// on a handler fault.
func (s *Session) Respond(ctx context.Context, query string) Reply {
	in := intent.Classify(query)
	if in == intent.Dashboard {
		return Reply{Intent: in, EnterDashboard: true}
	}

	start := time.Now()
	response, recovered := s.handleSafely(ctx, in, query)
	s.observer.OnTurnComplete(TurnEvent{
		Intent:    in,
		LatencyMs: time.Since(start).Milliseconds(),
		Recovered: recovered,
	})

	s.logTurn(ctx, query, response)
	return Reply{Intent: in, Text: response}
}

// ExitDashboard records the close of an admin sub-session against the query
// that opened it and returns the fixed farewell response.
func (s *Session) ExitDashboard(ctx context.Context, openingQuery string) string {
	const response = "Exited dashboard."
	s.logTurn(ctx, openingQuery, response)
	return response
}

func (s *Session) handleSafely(ctx context.Context, in intent.Intent, query string) (response string, recovered bool) {
	defer func() {
		if p := recover(); p != nil {
			response = apology(fmt.Errorf("%v", p))
			recovered = true
		}
	}()

	response, err := s.handle(ctx, in, query)
	if err != nil {
		return apology(err), true
	}
	return response, false
}

func apology(err error) string {
	return fmt.Sprintf("An unexpected error occurred: %v. Please rephrase your query and try again.", err)
}

func (s *Session) handle(ctx context.Context, in intent.Intent, query string) (string, error) {
	switch in {
	case intent.Return:
		return s.handleReturn(ctx, query)
	case intent.ChangeOrder:
		return s.handleChangeOrder(ctx, query)
	case intent.ViewCart:
		return s.handleViewCart(ctx)
	case intent.Purchase:
		return s.handlePurchase(ctx)
	case intent.PaymentInfo:
		return s.handlePaymentInfo(ctx)
	case intent.UpdateInfo:
		return s.handleUpdateInfo(ctx, query)
	case intent.CancelOrder:
		return s.handleCancelOrder(ctx, query)
	case intent.PolicyFAQ:
		return s.handlePolicyFAQ(query)
	case intent.Warranty:
		return s.handleWarranty()
	case intent.PaymentProcess:
		return s.handlePaymentProcess()
	case intent.TrackOrder:
		return s.handleTrackOrder(ctx, query)
	case intent.ProductSearch:
		return s.handleProductSearch(ctx, query)
	case intent.Compare:
		return s.handleCompare(ctx, query)
	case intent.AddToCart:
		return s.handleAddToCart(ctx, query)
	case intent.RemoveFromCart:
		return s.handleRemoveFromCart(ctx, query)
	case intent.Coupon:
		return s.handleCoupon(ctx)
	case intent.SizeFit:
		return s.handleSizeFit(ctx, query)
	case intent.ReorderSubscription:
		return s.handleReorder(ctx)
	case intent.ViewHistory:
		return s.handleViewHistory(ctx)
	default:
		return s.handleUnknown(ctx)
	}
}
