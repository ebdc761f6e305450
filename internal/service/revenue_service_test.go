package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicshop/internal/model"
	"musicshop/internal/snapshot"
)

func revenueOrder(id string, date time.Time, total float64, status model.OrderStatus) model.Order {
	return model.Order{
		ID:           id,
		CustomerName: "Customer " + id,
		Date:         date,
		Items:        []model.OrderItem{{SKU: "RE001", Name: "Roland FP-30", Quantity: 1, Price: total, Total: total}},
		Total:        total,
		Status:       status,
	}
}

func TestGetRevenue(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.svc.Snapshots.Import(env.ctx, snapshot.Snapshot{
		Orders: []model.Order{
			revenueOrder("o1", time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), 100.1, model.OrderStatusCompleted),  // Monday
			revenueOrder("o2", time.Date(2026, 1, 11, 23, 0, 0, 0, time.UTC), 200.2, model.OrderStatusCompleted), // Sunday
			revenueOrder("o3", time.Date(2026, 2, 2, 9, 0, 0, 0, time.UTC), 50, model.OrderStatusCompleted),
			revenueOrder("o4", time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC), 75, model.OrderStatusCompleted),
			revenueOrder("o5", time.Date(2026, 1, 6, 9, 0, 0, 0, time.UTC), 999, model.OrderStatusPending),
			revenueOrder("o6", time.Date(2026, 1, 7, 9, 0, 0, 0, time.UTC), 999, model.OrderStatusCancelled),
		},
		Config: model.DefaultAppConfig(),
	}))

	tests := []struct {
		groupBy string
		want    []RevenueDataPoint
	}{
		{"month", []RevenueDataPoint{
			{Period: "2026-01-01", Orders: 2, Revenue: 300.3},
			{Period: "2026-02-01", Orders: 1, Revenue: 50},
			{Period: "2026-04-01", Orders: 1, Revenue: 75},
		}},
		{"week", []RevenueDataPoint{
			{Period: "2026-01-05", Orders: 2, Revenue: 300.3},
			{Period: "2026-02-02", Orders: 1, Revenue: 50},
			{Period: "2026-03-30", Orders: 1, Revenue: 75},
		}},
		{"quarter", []RevenueDataPoint{
			{Period: "2026-01-01", Orders: 3, Revenue: 350.3},
			{Period: "2026-04-01", Orders: 1, Revenue: 75},
		}},
		{"year", []RevenueDataPoint{
			{Period: "2026-01-01", Orders: 4, Revenue: 425.3},
		}},
		{"fortnight", []RevenueDataPoint{
			{Period: "2026-01-01", Orders: 2, Revenue: 300.3},
			{Period: "2026-02-01", Orders: 1, Revenue: 50},
			{Period: "2026-04-01", Orders: 1, Revenue: 75},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.groupBy, func(t *testing.T) {
			got, err := env.svc.Revenue.GetRevenue(env.ctx, RevenueFilter{GroupBy: tt.groupBy})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetRevenueDateRange(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.svc.Snapshots.Import(env.ctx, snapshot.Snapshot{
		Orders: []model.Order{
			revenueOrder("o1", time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), 100, model.OrderStatusCompleted),
			revenueOrder("o2", time.Date(2026, 2, 5, 10, 0, 0, 0, time.UTC), 200, model.OrderStatusCompleted),
		},
		Config: model.DefaultAppConfig(),
	}))

	got, err := env.svc.Revenue.GetRevenue(env.ctx, RevenueFilter{
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []RevenueDataPoint{{Period: "2026-02-01", Orders: 1, Revenue: 200}}, got)
}

func TestGetRevenueEmpty(t *testing.T) {
	env := newTestEnv(t)

	got, err := env.svc.Revenue.GetRevenue(env.ctx, RevenueFilter{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTruncatePeriod(t *testing.T) {
	sunday := time.Date(2026, 3, 1, 18, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), truncatePeriod(sunday, "week"))
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), truncatePeriod(sunday, "quarter"))

	dec := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), truncatePeriod(dec, "quarter"))
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), truncatePeriod(dec, "month"))
}

func TestImportedOffsetsAreReportedInUTC(t *testing.T) {
	env := newTestEnv(t)
	bogota := time.FixedZone("-05:00", -5*60*60)
	require.NoError(t, env.svc.Snapshots.Import(env.ctx, snapshot.Snapshot{
		Orders: []model.Order{
			revenueOrder("o1", time.Date(2026, 1, 31, 22, 30, 0, 0, bogota), 10, model.OrderStatusCompleted), // 2026-02-01 03:30 UTC
			revenueOrder("o2", time.Date(2026, 2, 1, 1, 0, 0, 0, time.UTC), 20, model.OrderStatusCompleted),
			revenueOrder("o3", time.Date(2026, 1, 31, 23, 0, 0, 0, time.UTC), 40, model.OrderStatusCompleted),
		},
		Config: model.DefaultAppConfig(),
	}))

	got, err := env.svc.Revenue.GetRevenue(env.ctx, RevenueFilter{GroupBy: "month"})
	require.NoError(t, err)
	assert.Equal(t, []RevenueDataPoint{
		{Period: "2026-01-01", Orders: 1, Revenue: 40},
		{Period: "2026-02-01", Orders: 2, Revenue: 30},
	}, got)

	got, err = env.svc.Revenue.GetRevenue(env.ctx, RevenueFilter{
		StartDate: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, []RevenueDataPoint{{Period: "2026-02-01", Orders: 2, Revenue: 30}}, got)

	orders, _, err := env.svc.Orders.ListOrders(env.ctx, OrderListFilter{})
	require.NoError(t, err)
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		ids = append(ids, o.ID)
	}
	assert.Equal(t, []string{"o1", "o2", "o3"}, ids)
}
