package repository

import (
	"context"
	"strings"

	"musicshop/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// OrderFilter narrows an order listing
type OrderFilter struct {
	Statuses []model.OrderStatus // empty for all
	Search   string              // customer name or id
	Page     int
	Limit    int
}

type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	FindByIDWithItems(ctx context.Context, id string) (*model.Order, error)
	FindByIDForUpdate(ctx context.Context, id string) (*model.Order, error)
	UpdateFields(ctx context.Context, id string, status model.OrderStatus, customerName string) error
	Delete(ctx context.Context, id string) (bool, error)
	DeleteAll(ctx context.Context) error
	List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error)
	All(ctx context.Context) ([]model.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func itemsInPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create stores the order together with its items
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	for i := range order.Items {
		order.Items[i].Position = i
	}
	return GetDB(ctx, r.db).Create(order).Error
}

func (r *orderRepository) FindByIDWithItems(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).
		Preload("Items", itemsInPosition).
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDForUpdate(ctx context.Context, id string) (*model.Order, error) {
	var order model.Order
	if err := GetDB(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("Items", itemsInPosition).
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// UpdateFields writes the only mutable columns of an order
func (r *orderRepository) UpdateFields(ctx context.Context, id string, status model.OrderStatus, customerName string) error {
	return GetDB(ctx, r.db).Model(&model.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":        status,
		"customer_name": customerName,
	}).Error
}

func (r *orderRepository) Delete(ctx context.Context, id string) (bool, error) {
	db := GetDB(ctx, r.db)
	if err := db.Where("order_id = ?", id).Delete(&model.OrderItem{}).Error; err != nil {
		return false, err
	}
	res := db.Where("id = ?", id).Delete(&model.Order{})
	return res.RowsAffected > 0, res.Error
}

func (r *orderRepository) DeleteAll(ctx context.Context) error {
	db := GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true})
	if err := db.Delete(&model.OrderItem{}).Error; err != nil {
		return err
	}
	return db.Delete(&model.Order{}).Error
}

func (r *orderRepository) List(ctx context.Context, filter OrderFilter) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Order{})
	if len(filter.Statuses) > 0 {
		db = db.Where("status IN ?", filter.Statuses)
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		db = db.Where("LOWER(customer_name) LIKE ? OR LOWER(id) LIKE ?", like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := db.
		Preload("Items", itemsInPosition).
		Order("date DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&orders).Error; err != nil {
		return nil, 0, err
	}

	return orders, total, nil
}

// All returns every order, newest first
func (r *orderRepository) All(ctx context.Context) ([]model.Order, error) {
	var orders []model.Order
	if err := GetDB(ctx, r.db).Preload("Items", itemsInPosition).Order("date DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}
