package repository

import (
	"context"
	"fmt"

	"musicshop/internal/model"

	"gorm.io/gorm"
)

type RevenueRepository interface {
	OrderTotals(ctx context.Context, status model.OrderStatus, period DateRange) ([]model.Order, error)
}

type revenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) RevenueRepository {
	return &revenueRepository{db: db}
}

// OrderTotals loads date and total of every order in status, oldest first.
// Items are not loaded.
func (r *revenueRepository) OrderTotals(ctx context.Context, status model.OrderStatus, period DateRange) ([]model.Order, error) {
	var orders []model.Order
	db := GetDB(ctx, r.db).Model(&model.Order{}).
		Select("orders.id", "orders.date", "orders.total", "orders.status").
		Where("orders.status = ?", status)
	if err := inPeriod(db, period).
		Order("orders.date ASC").
		Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to query revenue: %w", err)
	}
	return orders, nil
}
