package model

import (
	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/shopspring/decimal"
)

type PaymentMethodEntity struct {
	ID   uint64                     `db:"id" json:"id"`
	Type constant.PaymentMethodType `db:"type" json:"type"`
}

// PaymentAllocation is one payment method's contribution to an order total,
// keyed by (order, method). Re-allocating the same pair replaces the amount.
type PaymentAllocation struct {
	OrderID         uint64          `db:"order_id" json:"order_id"`
	PaymentMethodID uint64          `db:"payment_method_id" json:"payment_method_id"`
	Amount          decimal.Decimal `db:"amount" json:"amount"`
}

type AllocatePaymentRequest struct {
	OrderID         uint64          `json:"order_id" validate:"required"`
	PaymentMethodID uint64          `json:"payment_method_id" validate:"required"`
	Amount          decimal.Decimal `json:"amount" validate:"required"`
}

type TotalAllocatedResponse struct {
	OrderID uint64          `json:"order_id"`
	Total   decimal.Decimal `json:"total"`
}
