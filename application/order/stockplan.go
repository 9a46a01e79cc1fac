package order

import (
	"sort"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
)

// planStockDeduction decides which warehouses satisfy a line's quantity:
// largest on-hand quantity first, ties broken by warehouse id. Returns one
// deduction per touched warehouse, or ErrInsufficientStock when the product's
// total on-hand quantity cannot cover the request.
func planStockDeduction(entries []model.StockEntry, orderID, productID uint64, quantity int64) ([]model.StockDeduction, error) {
	sorted := make([]model.StockEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Quantity != sorted[j].Quantity {
			return sorted[i].Quantity > sorted[j].Quantity
		}
		return sorted[i].WarehouseID < sorted[j].WarehouseID
	})

	needed := quantity
	deductions := make([]model.StockDeduction, 0, len(sorted))
	for _, entry := range sorted {
		if entry.Quantity <= 0 {
			continue
		}
		take := entry.Quantity
		if take > needed {
			take = needed
		}
		deductions = append(deductions, model.StockDeduction{
			OrderID:     orderID,
			ProductID:   productID,
			WarehouseID: entry.WarehouseID,
			Quantity:    take,
		})
		needed -= take
		if needed <= 0 {
			break
		}
	}

	if needed > 0 {
		return nil, errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return deductions, nil
}
