package constant

import "testing"

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	allowed := map[[2]OrderStatus]bool{
		{OrderStatusProcessing, OrderStatusApproved}:  true,
		{OrderStatusProcessing, OrderStatusCancelled}: true,
		{OrderStatusApproved, OrderStatusShipped}:     true,
		{OrderStatusApproved, OrderStatusCancelled}:   true,
		{OrderStatusShipped, OrderStatusDelivered}:    true,
	}

	statuses := []OrderStatus{
		OrderStatusProcessing,
		OrderStatusApproved,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}

	// every pair outside the allowed set must be rejected, including
	// self-transitions and anything out of the terminal states
	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]OrderStatus{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestOrderStatus_String(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   string
	}{
		{OrderStatusProcessing, "processing"},
		{OrderStatusApproved, "approved"},
		{OrderStatusShipped, "shipped"},
		{OrderStatusDelivered, "delivered"},
		{OrderStatusCancelled, "cancelled"},
		{OrderStatus(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("String(%d) = %s, want %s", int(tt.status), got, tt.want)
		}
	}
}
