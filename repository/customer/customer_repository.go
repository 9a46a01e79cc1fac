package customer

import (
	"context"
	"database/sql"

	"github.com/GustavoWillian7/ecommerce-engine/constant"
	"github.com/GustavoWillian7/ecommerce-engine/model"
	"github.com/jmoiron/sqlx"
)

type CustomerRepository interface {
	GetByID(ctx context.Context, id uint64) (*model.Customer, error)
	GetByEmail(ctx context.Context, email string) (*model.CustomerEntity, error)
	TaxIDExists(ctx context.Context, kind constant.CustomerKind, taxID string) (bool, error)
	CreateIndividual(ctx context.Context, entity *model.CustomerEntity, detail *model.IndividualDetail) (uint64, error)
	CreateOrganization(ctx context.Context, entity *model.CustomerEntity, detail *model.OrganizationDetail) (uint64, error)
}

type SQL struct {
	conn *sqlx.DB
}

func NewCustomerRepository(conn *sqlx.DB) CustomerRepository {
	return &SQL{conn: conn}
}

func (r *SQL) GetByID(ctx context.Context, id uint64) (*model.Customer, error) {
	var entity model.CustomerEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, name, email, address, kind, created_at FROM customer WHERE id = ?", id)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	result := &model.Customer{CustomerEntity: entity}
	switch entity.Kind {
	case constant.CustomerKindIndividual:
		var detail model.IndividualDetail
		row = r.conn.QueryRowxContext(ctx, "SELECT customer_id, tax_id FROM individual_detail WHERE customer_id = ?", id)
		if err := row.StructScan(&detail); err != nil {
			return nil, err
		}
		result.Individual = &detail
	case constant.CustomerKindOrganization:
		var detail model.OrganizationDetail
		row = r.conn.QueryRowxContext(ctx, "SELECT customer_id, tax_id, legal_name FROM organization_detail WHERE customer_id = ?", id)
		if err := row.StructScan(&detail); err != nil {
			return nil, err
		}
		result.Organization = &detail
	}
	return result, nil
}

func (r *SQL) GetByEmail(ctx context.Context, email string) (*model.CustomerEntity, error) {
	var entity model.CustomerEntity
	row := r.conn.QueryRowxContext(ctx, "SELECT id, name, email, address, kind, created_at FROM customer WHERE email = ?", email)
	if err := row.StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (r *SQL) TaxIDExists(ctx context.Context, kind constant.CustomerKind, taxID string) (bool, error) {
	table := "individual_detail"
	if kind == constant.CustomerKindOrganization {
		table = "organization_detail"
	}
	var count int64
	if err := r.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM "+table+" WHERE tax_id = ?", taxID); err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateIndividual inserts the base record and its specialization in one
// transaction so no customer is ever observable without a specialization.
func (r *SQL) CreateIndividual(ctx context.Context, entity *model.CustomerEntity, detail *model.IndividualDetail) (uint64, error) {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	id, err := r.insertBase(ctx, tx, entity, constant.CustomerKindIndividual)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO individual_detail (customer_id, tax_id) VALUES (?, ?)", id, detail.TaxID); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) CreateOrganization(ctx context.Context, entity *model.CustomerEntity, detail *model.OrganizationDetail) (uint64, error) {
	tx, err := r.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	id, err := r.insertBase(ctx, tx, entity, constant.CustomerKindOrganization)
	if err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO organization_detail (customer_id, tax_id, legal_name) VALUES (?, ?, ?)", id, detail.TaxID, detail.LegalName); err != nil {
		_ = tx.Rollback()
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SQL) insertBase(ctx context.Context, tx *sqlx.Tx, entity *model.CustomerEntity, kind constant.CustomerKind) (uint64, error) {
	res, err := tx.ExecContext(ctx, "INSERT INTO customer (name, email, address, kind) VALUES (?, ?, ?, ?)", entity.Name, entity.Email, entity.Address, kind)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}
