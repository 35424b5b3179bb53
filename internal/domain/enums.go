package domain

type OrderStatus string

const (
	OrderProcessing OrderStatus = "Processing"
	OrderShipped    OrderStatus = "Shipped"
	OrderDelivered  OrderStatus = "Delivered"
	OrderCanceled   OrderStatus = "Canceled"
)

// ValidOrderStatuses is the canonical set of accepted order status strings.
var ValidOrderStatuses = map[string]bool{
	"Processing": true, "Shipped": true, "Delivered": true, "Canceled": true,
}
