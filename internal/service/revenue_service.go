package service

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"musicshop/internal/model"
	"musicshop/internal/repository"
)

// --- DTOs ---

type RevenueDataPoint struct {
	Period  string  `json:"period"` // first day of the period, YYYY-MM-DD
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

type RevenueFilter struct {
	GroupBy   string    // week, month, quarter, year
	StartDate time.Time // zero means open
	EndDate   time.Time // zero means open
}

// --- Interface ---

type RevenueService interface {
	GetRevenue(ctx context.Context, filter RevenueFilter) ([]RevenueDataPoint, error)
}

type revenueService struct {
	revenueRepo repository.RevenueRepository
}

func NewRevenueService(revenueRepo repository.RevenueRepository) RevenueService {
	return &revenueService{revenueRepo: revenueRepo}
}

// --- Implementation ---

// GetRevenue sums completed orders per calendar period. Periods without
// sales are omitted.
func (s *revenueService) GetRevenue(ctx context.Context, filter RevenueFilter) ([]RevenueDataPoint, error) {
	groupBy := filter.GroupBy
	switch groupBy {
	case "week", "month", "quarter", "year":
		// valid
	default:
		groupBy = "month" // default
	}

	orders, err := s.revenueRepo.OrderTotals(ctx, model.OrderStatusCompleted, repository.DateRange{
		From: filter.StartDate,
		To:   filter.EndDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load revenue: %w", err)
	}

	points := []RevenueDataPoint{}
	var sum decimal.Decimal
	for _, o := range orders {
		period := truncatePeriod(o.Date, groupBy).Format("2006-01-02")
		if n := len(points); n == 0 || points[n-1].Period != period {
			if n > 0 {
				points[n-1].Revenue = sum.InexactFloat64()
			}
			points = append(points, RevenueDataPoint{Period: period})
			sum = decimal.Zero
		}
		points[len(points)-1].Orders++
		sum = sum.Add(decimal.NewFromFloat(o.Total))
	}
	if n := len(points); n > 0 {
		points[n-1].Revenue = sum.InexactFloat64()
	}

	return points, nil
}

// truncatePeriod returns the start of the period containing t, in UTC.
// Weeks start on Monday.
func truncatePeriod(t time.Time, groupBy string) time.Time {
	t = t.UTC()
	y, m, d := t.Date()
	switch groupBy {
	case "week":
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, time.UTC)
	case "quarter":
		return time.Date(y, m-(m-1)%3, 1, 0, 0, 0, 0, time.UTC)
	case "year":
		return time.Date(y, time.January, 1, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
	}
}
