package service

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"musicshop/internal/config"
	"musicshop/internal/database"
	"musicshop/internal/model"
)

type publishedEvent struct {
	Name string
	Data interface{}
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(event string, data interface{}) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{Name: event, Data: data})
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Name)
	}
	return out
}

type testEnv struct {
	db     *gorm.DB
	svc    *Services
	events *recordingPublisher
	ctx    context.Context
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:   config.DriverSQLite,
		Path:     filepath.Join(t.TempDir(), "shop.db"),
		LogLevel: "silent",
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	events := &recordingPublisher{}
	svc := NewServices(db, events)

	// one minute per order keeps "newest first" deterministic
	clock := time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	svc.Orders.(*orderService).now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}

	return &testEnv{
		db:     db,
		svc:    svc,
		events: events,
		ctx:    context.Background(),
	}
}

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func statusPtr(s model.OrderStatus) *model.OrderStatus { return &s }

func (e *testEnv) addProduct(t *testing.T, sku, name string, stock int, price float64) {
	t.Helper()
	_, err := e.svc.Inventory.SaveProduct(e.ctx, SaveProductRequest{
		SKU:      sku,
		Name:     name,
		Brand:    "Test",
		Stock:    stock,
		MinStock: intPtr(2),
		MaxStock: intPtr(20),
		Price:    price,
	})
	require.NoError(t, err)
}

func (e *testEnv) stock(t *testing.T, sku string) int {
	t.Helper()
	p, err := e.svc.Inventory.GetProduct(e.ctx, sku)
	require.NoError(t, err)
	return p.Stock
}

func (e *testEnv) createOrder(t *testing.T, status model.OrderStatus, items ...OrderItemRequest) *model.Order {
	t.Helper()
	res, err := e.svc.Orders.CreateOrder(e.ctx, CreateOrderRequest{
		CustomerName: "Laura Peña",
		Status:       status,
		Items:        items,
	})
	require.NoError(t, err)
	return res.Order
}

func item(sku string, qty int) OrderItemRequest {
	return OrderItemRequest{SKU: sku, Quantity: qty}
}
