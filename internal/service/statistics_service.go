package service

import (
	"context"
	"fmt"
	"time"

	"musicshop/internal/model"
	"musicshop/internal/repository"

	"github.com/shopspring/decimal"
)

const topSellingLimit = 5

// committedStatuses are the statuses whose items have left stock
var committedStatuses = []model.OrderStatus{
	model.OrderStatusPending,
	model.OrderStatusReady,
	model.OrderStatusCompleted,
}

type StatisticsService interface {
	GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error)
}

type statisticsService struct {
	productRepo repository.ProductRepository
	statsRepo   repository.StatisticsRepository
}

func NewStatisticsService(productRepo repository.ProductRepository, statsRepo repository.StatisticsRepository) StatisticsService {
	return &statisticsService{productRepo: productRepo, statsRepo: statsRepo}
}

// GetStatistics builds the dashboard figures. The catalog part is always
// current; order figures only count orders dated inside the range, where a
// zero bound is open.
func (s *statisticsService) GetStatistics(ctx context.Context, startDate, endDate time.Time) (model.StatisticsResponse, error) {
	response := model.StatisticsResponse{
		LowStock:        []model.StockAlert{},
		OverStock:       []model.StockAlert{},
		OrdersByStatus:  make(map[model.OrderStatus]int, len(model.OrderStatuses)),
		TopSellingItems: []model.ProductRanking{},
	}

	products, err := s.productRepo.All(ctx)
	if err != nil {
		return response, fmt.Errorf("failed to load catalog: %w", err)
	}
	response.TotalProducts = len(products)
	for _, p := range products {
		response.TotalUnits += p.Stock
		alert := model.StockAlert{SKU: p.SKU, Name: p.Name, Stock: p.Stock, MinStock: p.MinStock, MaxStock: p.MaxStock}
		if p.IsLowStock() {
			response.LowStock = append(response.LowStock, alert)
		}
		if p.IsOverStock() {
			response.OverStock = append(response.OverStock, alert)
		}
	}

	period := repository.DateRange{From: startDate, To: endDate}
	summary, err := s.statsRepo.OrderSummary(ctx, period)
	if err != nil {
		return response, err
	}

	for _, st := range model.OrderStatuses {
		response.OrdersByStatus[st] = 0
	}
	pipeline := decimal.Zero
	for _, row := range summary {
		response.OrdersByStatus[row.Status] = row.Count
		value := decimal.NewFromFloat(row.Value)
		switch row.Status {
		case model.OrderStatusCompleted:
			response.CompletedRevenue = value.InexactFloat64()
		case model.OrderStatusPending, model.OrderStatusReady:
			pipeline = pipeline.Add(value)
		case model.OrderStatusQuote:
			response.QuoteValue = value.InexactFloat64()
		}
	}
	response.PipelineValue = pipeline.InexactFloat64()

	top, err := s.statsRepo.TopProducts(ctx, committedStatuses, period, topSellingLimit)
	if err != nil {
		return response, err
	}
	if top != nil {
		response.TopSellingItems = top
	}

	return response, nil
}
