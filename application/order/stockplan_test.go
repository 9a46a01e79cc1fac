package order

import (
	"errors"
	"testing"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	cerr "github.com/GustavoWillian7/ecommerce-engine/utils/errors"
)

func TestPlanStockDeduction(t *testing.T) {
	tests := []struct {
		name     string
		entries  []model.StockEntry
		quantity int64
		want     []model.StockDeduction
		wantErr  bool
	}{
		{
			name: "single warehouse covers the line",
			entries: []model.StockEntry{
				{ProductID: 5, WarehouseID: 1, Quantity: 10},
			},
			quantity: 6,
			want: []model.StockDeduction{
				{OrderID: 1, ProductID: 5, WarehouseID: 1, Quantity: 6},
			},
		},
		{
			name: "largest warehouse drained first",
			entries: []model.StockEntry{
				{ProductID: 5, WarehouseID: 1, Quantity: 3},
				{ProductID: 5, WarehouseID: 2, Quantity: 8},
			},
			quantity: 5,
			want: []model.StockDeduction{
				{OrderID: 1, ProductID: 5, WarehouseID: 2, Quantity: 5},
			},
		},
		{
			name: "spills into the next warehouse when the largest runs out",
			entries: []model.StockEntry{
				{ProductID: 5, WarehouseID: 1, Quantity: 3},
				{ProductID: 5, WarehouseID: 2, Quantity: 8},
				{ProductID: 5, WarehouseID: 3, Quantity: 1},
			},
			quantity: 10,
			want: []model.StockDeduction{
				{OrderID: 1, ProductID: 5, WarehouseID: 2, Quantity: 8},
				{OrderID: 1, ProductID: 5, WarehouseID: 1, Quantity: 2},
			},
		},
		{
			name: "ties broken by lower warehouse id",
			entries: []model.StockEntry{
				{ProductID: 5, WarehouseID: 4, Quantity: 5},
				{ProductID: 5, WarehouseID: 2, Quantity: 5},
			},
			quantity: 5,
			want: []model.StockDeduction{
				{OrderID: 1, ProductID: 5, WarehouseID: 2, Quantity: 5},
			},
		},
		{
			name: "empty warehouses skipped",
			entries: []model.StockEntry{
				{ProductID: 5, WarehouseID: 1, Quantity: 0},
				{ProductID: 5, WarehouseID: 2, Quantity: 4},
			},
			quantity: 4,
			want: []model.StockDeduction{
				{OrderID: 1, ProductID: 5, WarehouseID: 2, Quantity: 4},
			},
		},
		{
			name: "total across warehouses falls short",
			entries: []model.StockEntry{
				{ProductID: 5, WarehouseID: 1, Quantity: 3},
				{ProductID: 5, WarehouseID: 2, Quantity: 2},
			},
			quantity: 6,
			wantErr:  true,
		},
		{
			name:     "no stock rows at all",
			entries:  nil,
			quantity: 1,
			wantErr:  true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := planStockDeduction(tt.entries, 1, 5, tt.quantity)
			if (err != nil) != tt.wantErr {
				t.Fatalf("planStockDeduction() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrInsufficientStock] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrInsufficientStock])
				}
				return
			}
			if len(got) != len(tt.want) {
				t.Fatalf("planStockDeduction() deductions = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("planStockDeduction() deduction[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPlanStockDeduction_DoesNotMutateInput(t *testing.T) {
	entries := []model.StockEntry{
		{ProductID: 5, WarehouseID: 1, Quantity: 1},
		{ProductID: 5, WarehouseID: 2, Quantity: 9},
	}
	if _, err := planStockDeduction(entries, 1, 5, 2); err != nil {
		t.Fatalf("planStockDeduction() error = %v", err)
	}
	if entries[0].WarehouseID != 1 || entries[1].WarehouseID != 2 {
		t.Fatal("planStockDeduction() must not reorder the caller's slice")
	}
}
