package repository

import (
	"context"
	"fmt"
	"time"

	"musicshop/internal/model"

	"gorm.io/gorm"
)

// StatusSummary is the number and value of orders in one status
type StatusSummary struct {
	Status model.OrderStatus
	Count  int
	Value  float64
}

// DateRange bounds order dates; zero times are open ends
type DateRange struct {
	From time.Time
	To   time.Time
}

type StatisticsRepository interface {
	OrderSummary(ctx context.Context, period DateRange) ([]StatusSummary, error)
	TopProducts(ctx context.Context, statuses []model.OrderStatus, period DateRange, limit int) ([]model.ProductRanking, error)
}

type statisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) StatisticsRepository {
	return &statisticsRepository{db: db}
}

func inPeriod(db *gorm.DB, period DateRange) *gorm.DB {
	if !period.From.IsZero() {
		db = db.Where("orders.date >= ?", period.From)
	}
	if !period.To.IsZero() {
		db = db.Where("orders.date <= ?", period.To)
	}
	return db
}

func (r *statisticsRepository) OrderSummary(ctx context.Context, period DateRange) ([]StatusSummary, error) {
	var rows []StatusSummary
	db := GetDB(ctx, r.db).Table("orders").
		Select("orders.status as status, COUNT(*) as count, COALESCE(SUM(orders.total), 0) as value")
	if err := inPeriod(db, period).
		Group("orders.status").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to summarise orders: %w", err)
	}
	return rows, nil
}

func (r *statisticsRepository) TopProducts(ctx context.Context, statuses []model.OrderStatus, period DateRange, limit int) ([]model.ProductRanking, error) {
	var rankings []model.ProductRanking
	db := GetDB(ctx, r.db).Table("order_items").
		Select("order_items.sku as sku, MAX(order_items.name) as name, SUM(order_items.quantity) as total_quantity, SUM(order_items.total) as total_value").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status IN ?", statuses)
	if err := inPeriod(db, period).
		Group("order_items.sku").
		Order("total_quantity DESC, sku ASC").
		Limit(limit).
		Scan(&rankings).Error; err != nil {
		return nil, fmt.Errorf("failed to query top products: %w", err)
	}
	return rankings, nil
}
