package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductEntity represents the product table entity. Attributes are immutable
// after creation, which is what makes read-side caching safe.
type ProductEntity struct {
	ID          uint64          `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Category    string          `db:"category" json:"category"`
	Description string          `db:"description" json:"description,omitempty"`
	BaseValue   decimal.Decimal `db:"base_value" json:"base_value"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
}

type WarehouseEntity struct {
	ID       uint64 `db:"id" json:"id"`
	Location string `db:"location" json:"location"`
}

// StockEntry is the per (product, warehouse) on-hand quantity.
type StockEntry struct {
	ProductID   uint64 `db:"product_id" json:"product_id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Quantity    int64  `db:"quantity" json:"quantity"`
}

// StockDeduction records how much of an order line was taken from which
// warehouse, so cancellation can restore the exact amounts.
type StockDeduction struct {
	ID          int64  `db:"id" json:"-"`
	OrderID     uint64 `db:"order_id" json:"order_id"`
	ProductID   uint64 `db:"product_id" json:"product_id"`
	WarehouseID uint64 `db:"warehouse_id" json:"warehouse_id"`
	Quantity    int64  `db:"quantity" json:"quantity"`
}

type AddProductRequest struct {
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description"`
	BaseValue   decimal.Decimal `json:"base_value" validate:"required"`
}

type AddProductResponse struct {
	ProductID uint64 `json:"product_id"`
}

type AdjustStockRequest struct {
	ProductID   uint64 `json:"product_id" validate:"required"`
	WarehouseID uint64 `json:"warehouse_id" validate:"required"`
	Delta       int64  `json:"delta" validate:"required"`
}

type TotalStockResponse struct {
	ProductID uint64 `json:"product_id"`
	Total     int64  `json:"total"`
}
