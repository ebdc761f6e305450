package repository

import (
	"context"
	"strings"

	"musicshop/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProductRepository interface {
	Save(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, sku string) (bool, error)
	DeleteAll(ctx context.Context) error
	FindBySKU(ctx context.Context, sku string) (*model.Product, error)
	FindBySKUForUpdate(ctx context.Context, sku string) (*model.Product, error)
	List(ctx context.Context, page, limit int, search string) ([]model.Product, int64, error)
	All(ctx context.Context) ([]model.Product, error)
	UpdateStock(ctx context.Context, sku string, stock int) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

// Save inserts the product or replaces every field of the one with the same SKU
func (r *productRepository) Save(ctx context.Context, product *model.Product) error {
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "sku"}},
		UpdateAll: true,
	}).Create(product).Error
}

func (r *productRepository) Delete(ctx context.Context, sku string) (bool, error) {
	res := GetDB(ctx, r.db).Where("sku = ?", sku).Delete(&model.Product{})
	return res.RowsAffected > 0, res.Error
}

func (r *productRepository) DeleteAll(ctx context.Context) error {
	return GetDB(ctx, r.db).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Product{}).Error
}

func (r *productRepository) FindBySKU(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	if err := GetDB(ctx, r.db).Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindBySKUForUpdate(ctx context.Context, sku string) (*model.Product, error) {
	var product model.Product
	if err := GetDB(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("sku = ?", sku).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, page, limit int, search string) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	db := GetDB(ctx, r.db).Model(&model.Product{})
	if search != "" {
		like := "%" + strings.ToLower(search) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(brand) LIKE ?", like, like, like)
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at asc, sku asc").Offset(offset).Limit(limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// All returns the whole catalog in insertion order
func (r *productRepository) All(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := GetDB(ctx, r.db).Order("created_at asc, sku asc").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) UpdateStock(ctx context.Context, sku string, stock int) error {
	return GetDB(ctx, r.db).Model(&model.Product{}).Where("sku = ?", sku).Update("stock", stock).Error
}
