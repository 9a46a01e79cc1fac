package payment

import (
	"context"
	"database/sql"

	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type PaymentRepository interface {
	ListPaymentMethods(ctx context.Context) ([]model.PaymentMethodEntity, error)
	UpsertAllocationTx(ctx context.Context, tx *sqlx.Tx, allocation *model.PaymentAllocation) error
	TotalAllocated(ctx context.Context, orderID uint64) (decimal.Decimal, error)
	TotalAllocatedTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (decimal.Decimal, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewPaymentRepository(conn *sqlx.DB) PaymentRepository {
	return &SQL{conn: conn}
}

func (r *SQL) ListPaymentMethods(ctx context.Context) ([]model.PaymentMethodEntity, error) {
	methods := make([]model.PaymentMethodEntity, 0)
	if err := r.conn.SelectContext(ctx, &methods, "SELECT id, type FROM payment_method ORDER BY id"); err != nil {
		return nil, err
	}
	return methods, nil
}

// UpsertAllocationTx replaces any prior allocation for the same (order,
// method) pair. The primary key makes the replacement atomic, so concurrent
// allocations to different methods on one order proceed independently.
func (r *SQL) UpsertAllocationTx(ctx context.Context, tx *sqlx.Tx, allocation *model.PaymentAllocation) error {
	q := "INSERT INTO payment_allocation (order_id, payment_method_id, amount) VALUES (?, ?, ?) ON DUPLICATE KEY UPDATE amount = VALUES(amount)"
	_, err := tx.ExecContext(ctx, q, allocation.OrderID, allocation.PaymentMethodID, allocation.Amount)
	return err
}

func (r *SQL) TotalAllocated(ctx context.Context, orderID uint64) (decimal.Decimal, error) {
	return r.totalAllocated(ctx, r.conn, orderID)
}

// TotalAllocatedTx reads the sum inside the caller's transaction so approval
// sees a single consistent snapshot of all allocations.
func (r *SQL) TotalAllocatedTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (decimal.Decimal, error) {
	return r.totalAllocated(ctx, tx, orderID)
}

type getter interface {
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

func (r *SQL) totalAllocated(ctx context.Context, g getter, orderID uint64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	q := "SELECT COALESCE(SUM(amount),0) as total FROM payment_allocation WHERE order_id = ?"
	if err := g.GetContext(ctx, &total, q, orderID); err != nil {
		if err == sql.ErrNoRows {
			return decimal.Zero, nil
		}
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
