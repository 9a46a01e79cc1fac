package model

import (
	"time"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/shopspring/decimal"
)

type OrderEntity struct {
	ID         uint64               `db:"id" json:"id"`
	CustomerID uint64               `db:"customer_id" json:"customer_id"`
	Status     constant.OrderStatus `db:"status" json:"status"`
	CreatedAt  time.Time            `db:"created_at" json:"created_at"`
}

// OrderLine captures the unit price as a snapshot taken at order creation.
// Later offer price changes never alter a placed order.
type OrderLine struct {
	OrderID   uint64          `db:"order_id" json:"order_id"`
	OfferID   uint64          `db:"offer_id" json:"offer_id"`
	Quantity  int64           `db:"quantity" json:"quantity"`
	UnitPrice decimal.Decimal `db:"unit_price" json:"unit_price"`
}

type OrderDetail struct {
	OrderEntity
	Lines []OrderLine     `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

type OrderLineRequest struct {
	OfferID  uint64 `json:"offer_id" validate:"required"`
	Quantity int64  `json:"quantity" validate:"required,gte=1"`
}

type CreateOrderRequest struct {
	CustomerID uint64             `json:"customer_id" validate:"required"`
	Lines      []OrderLineRequest `json:"lines" validate:"required,min=1,dive,required"`
}

type CreateOrderResponse struct {
	OrderID uint64          `json:"order_id"`
	Status  string          `json:"status"`
	Total   decimal.Decimal `json:"total"`
}
