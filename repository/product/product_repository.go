package product

import (
	"context"
	"database/sql"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/jmoiron/sqlx"
)

type ProductRepository interface {
	CreateProduct(ctx context.Context, entity *model.ProductEntity) (uint64, error)
	GetProductByID(ctx context.Context, id uint64) (*model.ProductEntity, error)
	GetWarehouseByID(ctx context.Context, id uint64) (*model.WarehouseEntity, error)
	ListWarehouses(ctx context.Context) ([]model.WarehouseEntity, error)
	TotalStock(ctx context.Context, productID uint64) (int64, error)
	AdjustStock(ctx context.Context, productID, warehouseID uint64, delta int64) error
	GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.StockEntry, error)
	DeductStockTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, quantity int64) error
	RecordDeductionsTx(ctx context.Context, tx *sqlx.Tx, deductions []model.StockDeduction) error
	RestoreDeductionsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

func (r *SQL) CreateProduct(ctx context.Context, entity *model.ProductEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO product (name, category, description, base_value) VALUES (?, ?, ?, ?)",
		entity.Name, entity.Category, entity.Description, entity.BaseValue)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetProductByID(ctx context.Context, id uint64) (*model.ProductEntity, error) {
	var entity model.ProductEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, name, category, description, base_value, created_at FROM product WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetWarehouseByID(ctx context.Context, id uint64) (*model.WarehouseEntity, error) {
	var entity model.WarehouseEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, location FROM warehouse WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) ListWarehouses(ctx context.Context) ([]model.WarehouseEntity, error) {
	warehouses := make([]model.WarehouseEntity, 0)
	if err := r.conn.SelectContext(ctx, &warehouses, "SELECT id, location FROM warehouse ORDER BY id"); err != nil {
		return nil, err
	}
	return warehouses, nil
}

func (r *SQL) TotalStock(ctx context.Context, productID uint64) (int64, error) {
	var total sql.NullInt64
	q := "SELECT COALESCE(SUM(quantity),0) as total FROM stock_entry WHERE product_id = ?"
	if err := r.conn.GetContext(ctx, &total, q, productID); err != nil {
		return 0, err
	}
	if !total.Valid {
		return 0, nil
	}
	return total.Int64, nil
}

// AdjustStock applies a signed delta to one (product, warehouse) entry in its
// own transaction. A negative delta that would drive the quantity below zero
// leaves the row untouched and fails with ErrInsufficientStock.
func (r *SQL) AdjustStock(ctx context.Context, productID, warehouseID uint64, delta int64) error {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if delta >= 0 {
		q := "INSERT INTO stock_entry (product_id, warehouse_id, quantity) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE quantity = quantity + VALUES(quantity)"
		if _, err := tx.ExecContext(ctx, q, productID, warehouseID, delta); err != nil {
			return err
		}
	} else {
		res, err := tx.ExecContext(ctx, "UPDATE stock_entry SET quantity = quantity + ? WHERE product_id = ? AND warehouse_id = ? AND quantity >= ?",
			delta, productID, warehouseID, -delta)
		if err != nil {
			return err
		}
		affected, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if affected == 0 {
			return errors.SetCustomError(constant.ErrInsufficientStock)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	committed = true
	return nil
}

// GetStockForUpdateTx locks every stock row of the product and returns them
// largest quantity first (ties broken by warehouse id), the order in which
// the engine drains warehouses.
func (r *SQL) GetStockForUpdateTx(ctx context.Context, tx *sqlx.Tx, productID uint64) ([]model.StockEntry, error) {
	rows, err := tx.QueryxContext(ctx, "SELECT product_id, warehouse_id, quantity FROM stock_entry WHERE product_id = ? ORDER BY quantity DESC, warehouse_id ASC FOR UPDATE", productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.StockEntry, 0)
	for rows.Next() {
		var entry model.StockEntry
		if err := rows.StructScan(&entry); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

func (r *SQL) DeductStockTx(ctx context.Context, tx *sqlx.Tx, productID, warehouseID uint64, quantity int64) error {
	res, err := tx.ExecContext(ctx, "UPDATE stock_entry SET quantity = quantity - ? WHERE product_id = ? AND warehouse_id = ? AND quantity >= ?",
		quantity, productID, warehouseID, quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInsufficientStock)
	}
	return nil
}

func (r *SQL) RecordDeductionsTx(ctx context.Context, tx *sqlx.Tx, deductions []model.StockDeduction) error {
	q := "INSERT INTO stock_deduction (order_id, product_id, warehouse_id, quantity) VALUES (?, ?, ?, ?)"
	for _, d := range deductions {
		if _, err := tx.ExecContext(ctx, q, d.OrderID, d.ProductID, d.WarehouseID, d.Quantity); err != nil {
			return err
		}
	}
	return nil
}

// RestoreDeductionsTx puts back every quantity the order took and deletes the
// deduction records, leaving stock exactly as it was before the order.
func (r *SQL) RestoreDeductionsTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) error {
	rows, err := tx.QueryxContext(ctx, "SELECT id, order_id, product_id, warehouse_id, quantity FROM stock_deduction WHERE order_id = ? FOR UPDATE", orderID)
	if err != nil {
		return err
	}
	defer rows.Close()

	deductions := make([]model.StockDeduction, 0)
	for rows.Next() {
		var d model.StockDeduction
		if err := rows.StructScan(&d); err != nil {
			return err
		}
		deductions = append(deductions, d)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, d := range deductions {
		if _, err := tx.ExecContext(ctx, "UPDATE stock_entry SET quantity = quantity + ? WHERE product_id = ? AND warehouse_id = ?",
			d.Quantity, d.ProductID, d.WarehouseID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM stock_deduction WHERE id = ?", d.ID); err != nil {
			return err
		}
	}
	return nil
}
