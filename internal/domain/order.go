package domain

import "time"

// Order is a snapshot of the cart at purchase time. IDs are sequential
// integers rendered as strings ("1", "2", ...) and are never reused, even
// after a cancellation or return removes the order.
type Order struct {
	ID        string
	ItemIDs   []int
	CreatedAt time.Time
	Status    OrderStatus
	Tracking  string
}

// AgeDays returns whole days elapsed between the order's creation and now.
func (o *Order) AgeDays(now time.Time) int {
	return int(now.Sub(o.CreatedAt).Hours() / 24)
}

// AgeHours returns fractional hours elapsed between creation and now.
func (o *Order) AgeHours(now time.Time) float64 {
	return now.Sub(o.CreatedAt).Hours()
}
