package repository

import (
	"context"

	"gorm.io/gorm"
)

// txCtxKey carries the open *gorm.DB transaction through service calls
type txCtxKey struct{}

// TransactionManager groups stock, order and catalog writes so that a status
// change and its stock movements commit or roll back together.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

type transactionManager struct {
	db *gorm.DB
}

func NewTransactionManager(db *gorm.DB) TransactionManager {
	return &transactionManager{db: db}
}

// RunInTx runs fn inside a transaction. A ctx that already carries one is
// reused, so a nested call commits with its caller and never opens a second
// connection (sqlite has only one).
func (t *transactionManager) RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error {
	if inTx(ctx) {
		return fn(ctx)
	}
	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(context.WithValue(ctx, txCtxKey{}, tx))
	})
}

func inTx(ctx context.Context) bool {
	_, ok := ctx.Value(txCtxKey{}).(*gorm.DB)
	return ok
}

// GetDB is the handle every repository query goes through: the caller's
// transaction when there is one, the shared pool otherwise.
func GetDB(ctx context.Context, rootDB *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txCtxKey{}).(*gorm.DB); ok {
		return tx.WithContext(ctx)
	}
	return rootDB.WithContext(ctx)
}
