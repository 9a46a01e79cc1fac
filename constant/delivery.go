package constant

type DeliveryStatus int

const (
	DeliveryStatusPreparing DeliveryStatus = 1
	DeliveryStatusInTransit DeliveryStatus = 2
	DeliveryStatusDelivered DeliveryStatus = 3
	DeliveryStatusFailed    DeliveryStatus = 4
)

var deliveryStatusName = map[DeliveryStatus]string{
	DeliveryStatusPreparing: "preparing",
	DeliveryStatusInTransit: "in_transit",
	DeliveryStatusDelivered: "delivered",
	DeliveryStatusFailed:    "failed",
}

func (s DeliveryStatus) String() string {
	if name, ok := deliveryStatusName[s]; ok {
		return name
	}
	return "unknown"
}

var deliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPreparing: {DeliveryStatusInTransit, DeliveryStatusFailed},
	DeliveryStatusInTransit: {DeliveryStatusDelivered, DeliveryStatusFailed},
}

func (s DeliveryStatus) CanTransitionTo(next DeliveryStatus) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
