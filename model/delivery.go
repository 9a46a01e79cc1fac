package model

import "github.com/GustavoWillian7/ecommerce-engine/constant"

// DeliveryEntity tracks the single delivery of an order. TrackingCode stays
// NULL until the delivery leaves Preparing and is assigned exactly once.
type DeliveryEntity struct {
	ID           uint64                  `db:"id" json:"id"`
	OrderID      uint64                  `db:"order_id" json:"order_id"`
	Status       constant.DeliveryStatus `db:"status" json:"status"`
	TrackingCode *string                 `db:"tracking_code" json:"tracking_code,omitempty"`
}
