package order

import (
	"context"
	"database/sql"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type OrderRepository interface {
	InsertOrderTx(ctx context.Context, tx *sqlx.Tx, customerID uint64) (uint64, error)
	InsertOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, lines []model.OrderLine) error
	GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error)
	GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error)
	GetOrderTotalTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (decimal.Decimal, error)
	UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error
	GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewOrderRepository(conn *sqlx.DB) OrderRepository {
	return &SQL{conn: conn}
}

func (r *SQL) InsertOrderTx(ctx context.Context, tx *sqlx.Tx, customerID uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO `order` (customer_id, status) VALUES (?, ?)", customerID, constant.OrderStatusProcessing)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) InsertOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, lines []model.OrderLine) error {
	q := "INSERT INTO order_line (order_id, offer_id, quantity, unit_price) VALUES (?, ?, ?, ?)"
	for _, line := range lines {
		if _, err := tx.ExecContext(ctx, q, orderID, line.OfferID, line.Quantity, line.UnitPrice); err != nil {
			return err
		}
	}
	return nil
}

// GetOrderForUpdateTx locks the order row, serializing every lifecycle
// mutation of the order. Returns nil when the order does not exist.
func (r *SQL) GetOrderForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.OrderEntity, error) {
	var entity model.OrderEntity
	row := tx.QueryRowxContext(ctx, "SELECT id, customer_id, status, created_at FROM `order` WHERE id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetOrderLinesTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) ([]model.OrderLine, error) {
	lines := make([]model.OrderLine, 0)
	if err := tx.SelectContext(ctx, &lines, "SELECT order_id, offer_id, quantity, unit_price FROM order_line WHERE order_id = ?", orderID); err != nil {
		return nil, err
	}
	return lines, nil
}

// GetOrderTotalTx computes the order total from the captured snapshots, so
// later offer price changes never affect the result.
func (r *SQL) GetOrderTotalTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	q := "SELECT COALESCE(SUM(quantity * unit_price),0) as total FROM order_line WHERE order_id = ?"
	if err := tx.GetContext(ctx, &total, q, orderID); err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *SQL) UpdateOrderStatusTx(ctx context.Context, tx *sqlx.Tx, orderID uint64, status constant.OrderStatus) error {
	_, err := tx.ExecContext(ctx, "UPDATE `order` SET status = ? WHERE id = ?", status, orderID)
	return err
}

func (r *SQL) GetOrderDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	var entity model.OrderEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, customer_id, status, created_at FROM `order` WHERE id = ?", orderID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	lines := make([]model.OrderLine, 0)
	if err := r.conn.SelectContext(ctx, &lines, "SELECT order_id, offer_id, quantity, unit_price FROM order_line WHERE order_id = ?", orderID); err != nil {
		return nil, err
	}

	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(line.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}

	return &model.OrderDetail{OrderEntity: entity, Lines: lines, Total: total}, nil
}
