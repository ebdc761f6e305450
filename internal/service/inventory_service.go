package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"musicshop/internal/model"
	"musicshop/internal/pricing"
	"musicshop/internal/repository"
	"musicshop/internal/sku"
	"musicshop/pkg/pagination"

	"gorm.io/gorm"
)

// DTOs
type SaveProductRequest struct {
	SKU      string  `json:"sku" binding:"required,max=64"`
	Name     string  `json:"name" binding:"required"`
	Brand    string  `json:"brand"`
	Color    string  `json:"color"`
	CostUSD  float64 `json:"cost_usd" binding:"min=0"`
	Weight   float64 `json:"weight" binding:"min=0"`
	Stock    int     `json:"stock"`
	MinStock *int    `json:"min_stock" binding:"omitempty,min=0"`
	MaxStock *int    `json:"max_stock" binding:"omitempty,min=0"`
	Price    float64 `json:"price" binding:"min=0"`
}

type GenerateSKURequest struct {
	Brand string `json:"brand" binding:"required"`
	Color string `json:"color"`
}

type GenerateSKUResponse struct {
	SKU    string `json:"sku"`
	Exists bool   `json:"exists"`
}

type ProductResponse struct {
	SKU        string  `json:"sku"`
	Name       string  `json:"name"`
	Brand      string  `json:"brand"`
	Color      string  `json:"color,omitempty"`
	CostUSD    float64 `json:"cost_usd"`
	Weight     float64 `json:"weight"`
	Stock      int     `json:"stock"`
	MinStock   int     `json:"min_stock"`
	MaxStock   int     `json:"max_stock"`
	Price      float64 `json:"price"`
	LandedCost float64 `json:"landed_cost"`
	Margin     float64 `json:"margin"`
	LowStock   bool    `json:"low_stock"`
	OverStock  bool    `json:"over_stock"`
}

// CSVHeader is the first row written by ExportCSV
var CSVHeader = []string{"SKU", "Name", "Sale Price", "Cost USD", "Landed Cost", "Stock", "Min", "Max"}

type InventoryService interface {
	GetProducts(ctx context.Context, page, limit int, search string) ([]ProductResponse, int64, error)
	GetProduct(ctx context.Context, sku string) (ProductResponse, error)
	SaveProduct(ctx context.Context, req SaveProductRequest) (ProductResponse, error)
	DeleteProduct(ctx context.Context, sku string) error
	GenerateSKU(ctx context.Context, req GenerateSKURequest) (GenerateSKUResponse, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	settingsRepo repository.SettingsRepository
	txManager    repository.TransactionManager
	events       EventPublisher
}

func NewInventoryService(
	productRepo repository.ProductRepository,
	settingsRepo repository.SettingsRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) InventoryService {
	return &inventoryService{
		productRepo:  productRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		events:       publisherOrDiscard(events),
	}
}

func toProductResponse(p model.Product, cfg model.AppConfig) ProductResponse {
	return ProductResponse{
		SKU:        p.SKU,
		Name:       p.Name,
		Brand:      p.Brand,
		Color:      p.Color,
		CostUSD:    p.CostUSD,
		Weight:     p.Weight,
		Stock:      p.Stock,
		MinStock:   p.MinStock,
		MaxStock:   p.MaxStock,
		Price:      p.Price,
		LandedCost: pricing.LandedCost(p.CostUSD, p.Weight, cfg),
		Margin:     pricing.Margin(p, cfg),
		LowStock:   p.IsLowStock(),
		OverStock:  p.IsOverStock(),
	}
}

func (s *inventoryService) GetProducts(ctx context.Context, page, limit int, search string) ([]ProductResponse, int64, error) {
	p := pagination.Normalize(page, limit)

	products, total, err := s.productRepo.List(ctx, p.Page, p.Limit, strings.TrimSpace(search))
	if err != nil {
		return nil, 0, err
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load settings: %w", err)
	}

	res := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		res = append(res, toProductResponse(product, cfg))
	}

	return res, total, nil
}

func (s *inventoryService) GetProduct(ctx context.Context, code string) (ProductResponse, error) {
	product, err := s.productRepo.FindBySKU(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProductResponse{}, fmt.Errorf("%w: %s", ErrProductNotFound, code)
		}
		return ProductResponse{}, fmt.Errorf("database error: %w", err)
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return ProductResponse{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return toProductResponse(*product, cfg), nil
}

// SaveProduct inserts a product or replaces every field of the existing one
// with the same SKU
func (s *inventoryService) SaveProduct(ctx context.Context, req SaveProductRequest) (ProductResponse, error) {
	product := model.Product{
		SKU:      strings.TrimSpace(req.SKU),
		Name:     strings.TrimSpace(req.Name),
		Brand:    strings.TrimSpace(req.Brand),
		Color:    strings.TrimSpace(req.Color),
		CostUSD:  req.CostUSD,
		Weight:   req.Weight,
		Stock:    req.Stock,
		MinStock: model.DefaultMinStock,
		MaxStock: model.DefaultMaxStock,
		Price:    req.Price,
	}
	if req.MinStock != nil {
		product.MinStock = *req.MinStock
	}
	if req.MaxStock != nil {
		product.MaxStock = *req.MaxStock
	}
	if product.SKU == "" || product.Name == "" {
		return ProductResponse{}, fmt.Errorf("%w: sku and name are required", ErrInvalidProduct)
	}

	var cfg model.AppConfig
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.productRepo.Save(txCtx, &product); err != nil {
			return fmt.Errorf("failed to save product: %w", err)
		}
		var err error
		cfg, err = s.settingsRepo.Get(txCtx)
		return err
	})
	if err != nil {
		return ProductResponse{}, err
	}

	res := toProductResponse(product, cfg)
	s.events.Publish(EventProductSaved, res)
	return res, nil
}

// DeleteProduct removes the product. Orders that reference it keep their
// items; later stock effects on it are skipped.
func (s *inventoryService) DeleteProduct(ctx context.Context, code string) error {
	deleted, err := s.productRepo.Delete(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrProductNotFound, code)
	}

	s.events.Publish(EventProductDeleted, map[string]interface{}{"sku": code})
	return nil
}

// GenerateSKU proposes a SKU for a new product and reports whether the
// candidate is already taken
func (s *inventoryService) GenerateSKU(ctx context.Context, req GenerateSKURequest) (GenerateSKUResponse, error) {
	products, err := s.productRepo.All(ctx)
	if err != nil {
		return GenerateSKUResponse{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	code, err := sku.Generate(req.Brand, req.Color, products)
	if err != nil {
		return GenerateSKUResponse{}, fmt.Errorf("%w: %w", ErrInvalidProduct, err)
	}
	return GenerateSKUResponse{SKU: code, Exists: sku.Exists(code, products)}, nil
}

// ExportCSV writes the whole catalog as CSV
func (s *inventoryService) ExportCSV(ctx context.Context, w io.Writer) error {
	products, err := s.productRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	cfg, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, p := range products {
		row := []string{
			p.SKU,
			p.Name,
			formatNumber(p.Price),
			formatNumber(p.CostUSD),
			formatNumber(pricing.LandedCost(p.CostUSD, p.Weight, cfg)),
			strconv.Itoa(p.Stock),
			strconv.Itoa(p.MinStock),
			strconv.Itoa(p.MaxStock),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
