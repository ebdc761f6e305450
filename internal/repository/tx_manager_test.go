package repository

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"musicshop/internal/config"
	"musicshop/internal/database"
	"musicshop/internal/model"
)

func openShopDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "shop.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestRunInTxNestedCallJoinsCaller(t *testing.T) {
	db := openShopDB(t)
	tm := NewTransactionManager(db)
	products := NewProductRepository(db)
	ctx := context.Background()

	assert.False(t, inTx(ctx))

	// sqlite has one connection: a nested call that opened its own
	// transaction would block here forever
	err := tm.RunInTx(ctx, func(outer context.Context) error {
		require.True(t, inTx(outer))
		if err := products.Save(outer, &model.Product{SKU: "RE001", Name: "Roland FP-30", Brand: "Roland", Stock: 4}); err != nil {
			return err
		}
		return tm.RunInTx(outer, func(inner context.Context) error {
			assert.Same(t, outer, inner)
			return products.UpdateStock(inner, "RE001", 3)
		})
	})
	require.NoError(t, err)

	p, err := products.FindBySKU(ctx, "RE001")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Stock)
}

func TestRunInTxRollsBackStockOnError(t *testing.T) {
	db := openShopDB(t)
	tm := NewTransactionManager(db)
	products := NewProductRepository(db)
	ctx := context.Background()
	require.NoError(t, products.Save(ctx, &model.Product{SKU: "YAB1001", Name: "Yamaha P-45", Brand: "Yamaha", Stock: 5}))

	errOutOfStock := errors.New("out of stock")
	err := tm.RunInTx(ctx, func(txCtx context.Context) error {
		return tm.RunInTx(txCtx, func(inner context.Context) error {
			if err := products.UpdateStock(inner, "YAB1001", 0); err != nil {
				return err
			}
			return errOutOfStock
		})
	})
	require.ErrorIs(t, err, errOutOfStock)

	p, err := products.FindBySKU(ctx, "YAB1001")
	require.NoError(t, err)
	assert.Equal(t, 5, p.Stock)
}

func TestGetDBOutsideTransaction(t *testing.T) {
	db := openShopDB(t)

	got := GetDB(context.Background(), db)
	require.NotNil(t, got)
	assert.Same(t, db.Config, got.Config)
	assert.Equal(t, context.Background(), got.Statement.Context)
}
