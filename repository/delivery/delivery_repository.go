package delivery

import (
	"context"
	"database/sql"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/jmoiron/sqlx"
)

type DeliveryRepository interface {
	InsertDeliveryTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (uint64, error)
	GetByOrderID(ctx context.Context, orderID uint64) (*model.DeliveryEntity, error)
	GetByOrderIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.DeliveryEntity, error)
	UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, status constant.DeliveryStatus, trackingCode *string) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewDeliveryRepository(conn *sqlx.DB) DeliveryRepository {
	return &SQL{conn: conn}
}

// InsertDeliveryTx creates the one delivery record an order ever has; the
// unique key on order_id turns a double insert into ErrInvalidTransition.
func (r *SQL) InsertDeliveryTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO delivery (order_id, status) VALUES (?, ?)", orderID, constant.DeliveryStatusPreparing)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return 0, errors.SetCustomError(constant.ErrInvalidTransition)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetByOrderID(ctx context.Context, orderID uint64) (*model.DeliveryEntity, error) {
	var entity model.DeliveryEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, order_id, status, tracking_code FROM delivery WHERE order_id = ?", orderID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) GetByOrderIDForUpdateTx(ctx context.Context, tx *sqlx.Tx, orderID uint64) (*model.DeliveryEntity, error) {
	var entity model.DeliveryEntity
	row := tx.QueryRowxContext(ctx, "SELECT id, order_id, status, tracking_code FROM delivery WHERE order_id = ? FOR UPDATE", orderID)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) UpdateStatusTx(ctx context.Context, tx *sqlx.Tx, deliveryID uint64, status constant.DeliveryStatus, trackingCode *string) error {
	if trackingCode != nil {
		_, err := tx.ExecContext(ctx, "UPDATE delivery SET status = ?, tracking_code = ? WHERE id = ?", status, *trackingCode, deliveryID)
		return err
	}
	_, err := tx.ExecContext(ctx, "UPDATE delivery SET status = ? WHERE id = ?", status, deliveryID)
	return err
}
