package offer

import (
	"context"
	"database/sql"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/GustavoWillian7/ecommerce-engine/utils/errors"
	"github.com/jmoiron/sqlx"
)

type OfferRepository interface {
	CreateVendor(ctx context.Context, entity *model.VendorEntity) (uint64, error)
	GetVendorByID(ctx context.Context, id uint64) (*model.VendorEntity, error)
	CreateOffer(ctx context.Context, entity *model.OfferEntity) (uint64, error)
	GetOfferByID(ctx context.Context, id uint64) (*model.OfferEntity, error)
	AdjustQuantity(ctx context.Context, offerID uint64, delta int64) error
	GetOffersForUpdateTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (map[uint64]model.OfferEntity, error)
	DeductQuantityTx(ctx context.Context, tx *sqlx.Tx, offerID uint64, quantity int64) error
	RestoreQuantityTx(ctx context.Context, tx *sqlx.Tx, offerID uint64, quantity int64) error
}

type SQL struct {
	conn *sqlx.DB
}

func NewOfferRepository(conn *sqlx.DB) OfferRepository {
	return &SQL{conn: conn}
}

func (r *SQL) CreateVendor(ctx context.Context, entity *model.VendorEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO vendor (legal_name, tax_id) VALUES (?, ?)", entity.LegalName, entity.TaxID)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return 0, errors.SetCustomError(constant.ErrDuplicateIdentifier)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetVendorByID(ctx context.Context, id uint64) (*model.VendorEntity, error) {
	var entity model.VendorEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, legal_name, tax_id FROM vendor WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

// CreateOffer relies on the (product_id, vendor_id) unique key to reject a
// second offer for the same pair, including under concurrent creation.
func (r *SQL) CreateOffer(ctx context.Context, entity *model.OfferEntity) (uint64, error) {
	res, err := r.conn.ExecContext(ctx, "INSERT INTO offer (product_id, vendor_id, price, quantity) VALUES (?, ?, ?, ?)",
		entity.ProductID, entity.VendorID, entity.Price, entity.Quantity)
	if err != nil {
		if errors.IsDuplicateEntry(err) {
			return 0, errors.SetCustomError(constant.ErrDuplicateOffer)
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (r *SQL) GetOfferByID(ctx context.Context, id uint64) (*model.OfferEntity, error) {
	var entity model.OfferEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, product_id, vendor_id, price, quantity FROM offer WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) AdjustQuantity(ctx context.Context, offerID uint64, delta int64) error {
	// RowsAffected counts rows changed, not rows matched, so a zero delta
	// on an existing row would read as a miss. It is a no-op either way.
	if delta == 0 {
		return nil
	}

	var res sql.Result
	var err error
	if delta >= 0 {
		res, err = r.conn.ExecContext(ctx, "UPDATE offer SET quantity = quantity + ? WHERE id = ?", delta, offerID)
	} else {
		res, err = r.conn.ExecContext(ctx, "UPDATE offer SET quantity = quantity + ? WHERE id = ? AND quantity >= ?", delta, offerID, -delta)
	}
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		if delta >= 0 {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		return errors.SetCustomError(constant.ErrInsufficientOfferStock)
	}
	return nil
}

// GetOffersForUpdateTx locks the offer rows in ascending id order so two
// concurrent orders over the same offers cannot deadlock each other.
func (r *SQL) GetOffersForUpdateTx(ctx context.Context, tx *sqlx.Tx, ids []uint64) (map[uint64]model.OfferEntity, error) {
	if len(ids) == 0 {
		return map[uint64]model.OfferEntity{}, nil
	}

	query, args, err := sqlx.In("SELECT id, product_id, vendor_id, price, quantity FROM offer WHERE id IN (?) ORDER BY id ASC FOR UPDATE", ids)
	if err != nil {
		return nil, err
	}

	rows, err := tx.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	offers := make(map[uint64]model.OfferEntity, len(ids))
	for rows.Next() {
		var entity model.OfferEntity
		if err := rows.StructScan(&entity); err != nil {
			return nil, err
		}
		offers[entity.ID] = entity
	}
	return offers, rows.Err()
}

func (r *SQL) DeductQuantityTx(ctx context.Context, tx *sqlx.Tx, offerID uint64, quantity int64) error {
	res, err := tx.ExecContext(ctx, "UPDATE offer SET quantity = quantity - ? WHERE id = ? AND quantity >= ?", quantity, offerID, quantity)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrInsufficientOfferStock)
	}
	return nil
}

func (r *SQL) RestoreQuantityTx(ctx context.Context, tx *sqlx.Tx, offerID uint64, quantity int64) error {
	_, err := tx.ExecContext(ctx, "UPDATE offer SET quantity = quantity + ? WHERE id = ?", quantity, offerID)
	return err
}
