package constant

// PaymentMethodType is the closed set of accepted payment method labels.
// The runtime catalog is loaded from the payment_method table at startup and
// rejects any row whose type is not listed here.
type PaymentMethodType string

const (
	PaymentMethodCreditCard PaymentMethodType = "credit_card"
	PaymentMethodBoleto     PaymentMethodType = "boleto"
	PaymentMethodPix        PaymentMethodType = "pix"
)

var knownPaymentMethodTypes = map[PaymentMethodType]struct{}{
	PaymentMethodCreditCard: {},
	PaymentMethodBoleto:     {},
	PaymentMethodPix:        {},
}

func (t PaymentMethodType) Known() bool {
	_, ok := knownPaymentMethodTypes[t]
	return ok
}
