package service

import (
	"context"
	"errors"
	"fmt"

	"musicshop/internal/model"
	"musicshop/internal/pricing"
	"musicshop/internal/repository"

	"gorm.io/gorm"
)

// UpdateSettingsRequest changes only the fields that are present
type UpdateSettingsRequest struct {
	ExchangeRate *float64 `json:"exchange_rate" binding:"omitempty,gt=0"`
	CourierRate  *float64 `json:"courier_rate" binding:"omitempty,min=0"`
	Packaging    *float64 `json:"packaging" binding:"omitempty,min=0"`
}

type LandedCostRequest struct {
	UnitCost float64 `json:"unit_cost"`
	Weight   float64 `json:"weight"`
}

type LandedCostResponse struct {
	UnitCost   float64         `json:"unit_cost"`
	Weight     float64         `json:"weight"`
	LandedCost float64         `json:"landed_cost"`
	Config     model.AppConfig `json:"config"`
}

type SettingsService interface {
	GetConfig(ctx context.Context) (model.AppConfig, error)
	UpdateConfig(ctx context.Context, req UpdateSettingsRequest) (model.AppConfig, error)
	LandedCost(ctx context.Context, req LandedCostRequest) (LandedCostResponse, error)
	ProductLandedCost(ctx context.Context, sku string) (LandedCostResponse, error)
}

type settingsService struct {
	settingsRepo repository.SettingsRepository
	productRepo  repository.ProductRepository
	events       EventPublisher
}

func NewSettingsService(
	settingsRepo repository.SettingsRepository,
	productRepo repository.ProductRepository,
	events EventPublisher,
) SettingsService {
	return &settingsService{
		settingsRepo: settingsRepo,
		productRepo:  productRepo,
		events:       publisherOrDiscard(events),
	}
}

func (s *settingsService) GetConfig(ctx context.Context) (model.AppConfig, error) {
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg, nil
}

func (s *settingsService) UpdateConfig(ctx context.Context, req UpdateSettingsRequest) (model.AppConfig, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return model.AppConfig{}, err
	}

	if req.ExchangeRate != nil {
		if *req.ExchangeRate <= 0 {
			return model.AppConfig{}, fmt.Errorf("%w: exchange rate must be positive", ErrInvalidSettings)
		}
		cfg.ExchangeRate = *req.ExchangeRate
	}
	if req.CourierRate != nil {
		if *req.CourierRate < 0 {
			return model.AppConfig{}, fmt.Errorf("%w: courier rate cannot be negative", ErrInvalidSettings)
		}
		cfg.CourierRate = *req.CourierRate
	}
	if req.Packaging != nil {
		if *req.Packaging < 0 {
			return model.AppConfig{}, fmt.Errorf("%w: packaging cannot be negative", ErrInvalidSettings)
		}
		cfg.Packaging = *req.Packaging
	}

	if err := s.settingsRepo.Save(ctx, cfg); err != nil {
		return model.AppConfig{}, fmt.Errorf("failed to save settings: %w", err)
	}

	s.events.Publish(EventSettingsUpdated, cfg)
	return cfg, nil
}

func (s *settingsService) LandedCost(ctx context.Context, req LandedCostRequest) (LandedCostResponse, error) {
	cfg, err := s.GetConfig(ctx)
	if err != nil {
		return LandedCostResponse{}, err
	}
	return LandedCostResponse{
		UnitCost:   req.UnitCost,
		Weight:     req.Weight,
		LandedCost: pricing.LandedCost(req.UnitCost, req.Weight, cfg),
		Config:     cfg,
	}, nil
}

// ProductLandedCost prices a catalog product with the stored configuration
func (s *settingsService) ProductLandedCost(ctx context.Context, code string) (LandedCostResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LandedCostResponse{}, fmt.Errorf("%w: %s", ErrProductNotFound, code)
		}
		return LandedCostResponse{}, fmt.Errorf("database error: %w", err)
	}
	return s.LandedCost(ctx, LandedCostRequest{UnitCost: product.CostUSD, Weight: product.Weight})
}
