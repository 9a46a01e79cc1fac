package constant

type OrderStatus int

const (
	OrderStatusProcessing OrderStatus = 1
	OrderStatusApproved   OrderStatus = 2
	OrderStatusShipped    OrderStatus = 3
	OrderStatusDelivered  OrderStatus = 4
	OrderStatusCancelled  OrderStatus = 5
)

var orderStatusName = map[OrderStatus]string{
	OrderStatusProcessing: "processing",
	OrderStatusApproved:   "approved",
	OrderStatusShipped:    "shipped",
	OrderStatusDelivered:  "delivered",
	OrderStatusCancelled:  "cancelled",
}

func (s OrderStatus) String() string {
	if name, ok := orderStatusName[s]; ok {
		return name
	}
	return "unknown"
}

// orderTransitions enumerates every legal order status transition.
// Cancellation is only possible before shipment.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusProcessing: {OrderStatusApproved, OrderStatusCancelled},
	OrderStatusApproved:   {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
