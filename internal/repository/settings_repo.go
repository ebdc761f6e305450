package repository

import (
	"context"
	"errors"

	"musicshop/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get(ctx context.Context) (model.AppConfig, error)
	Save(ctx context.Context, cfg model.AppConfig) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

// Get returns the stored configuration, or the defaults when none was saved
func (r *settingsRepository) Get(ctx context.Context) (model.AppConfig, error) {
	var cfg model.AppConfig
	err := GetDB(ctx, r.db).First(&cfg, "id = ?", model.SettingsID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.DefaultAppConfig(), nil
	}
	if err != nil {
		return model.AppConfig{}, err
	}
	return cfg, nil
}

func (r *settingsRepository) Save(ctx context.Context, cfg model.AppConfig) error {
	cfg.ID = model.SettingsID
	return GetDB(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&cfg).Error
}
