package tx

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// TxRepository hands transactions to the application layer, which threads
// the *sqlx.Tx through every repository call of one lifecycle mutation so
// order, offer, stock and payment rows commit or roll back together.
type TxRepository interface {
	BeginTx(ctx context.Context) (*sqlx.Tx, error)
	CommitTx(tx *sqlx.Tx) error
	RollbackTx(tx *sqlx.Tx) error
}

type sqlTx struct {
	db *sqlx.DB
}

func NewTxRepository(db *sqlx.DB) TxRepository {
	return &sqlTx{db: db}
}

// BeginTx opens a transaction at the connection's default isolation level.
// Row serialization comes from explicit FOR UPDATE locks, not the isolation
// level, so the default is sufficient.
func (r *sqlTx) BeginTx(ctx context.Context) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, nil)
}

func (r *sqlTx) CommitTx(tx *sqlx.Tx) error {
	return tx.Commit()
}

func (r *sqlTx) RollbackTx(tx *sqlx.Tx) error {
	return tx.Rollback()
}
