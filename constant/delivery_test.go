package constant

import "testing"

func TestDeliveryStatus_CanTransitionTo(t *testing.T) {
	allowed := map[[2]DeliveryStatus]bool{
		{DeliveryStatusPreparing, DeliveryStatusInTransit}: true,
		{DeliveryStatusPreparing, DeliveryStatusFailed}:    true,
		{DeliveryStatusInTransit, DeliveryStatusDelivered}: true,
		{DeliveryStatusInTransit, DeliveryStatusFailed}:    true,
	}

	statuses := []DeliveryStatus{
		DeliveryStatusPreparing,
		DeliveryStatusInTransit,
		DeliveryStatusDelivered,
		DeliveryStatusFailed,
	}

	for _, from := range statuses {
		for _, to := range statuses {
			want := allowed[[2]DeliveryStatus{from, to}]
			if got := from.CanTransitionTo(to); got != want {
				t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", from, to, got, want)
			}
		}
	}
}

func TestPaymentMethodType_Known(t *testing.T) {
	for _, known := range []PaymentMethodType{PaymentMethodCreditCard, PaymentMethodBoleto, PaymentMethodPix} {
		if !known.Known() {
			t.Errorf("Known(%s) = false, want true", known)
		}
	}
	if PaymentMethodType("cheque").Known() {
		t.Error(`Known("cheque") = true, want false`)
	}
}
