package service

import (
	"musicshop/internal/repository"

	"gorm.io/gorm"
)

// Services groups every service built over one database
type Services struct {
	Inventory  InventoryService
	Orders     OrderService
	Settings   SettingsService
	Statistics StatisticsService
	Revenue    RevenueService
	Snapshots  SnapshotService
}

// NewServices wires repositories and services. events may be nil.
func NewServices(db *gorm.DB, events EventPublisher) *Services {
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	statsRepo := repository.NewStatisticsRepository(db)
	revenueRepo := repository.NewRevenueRepository(db)
	txManager := repository.NewTransactionManager(db)

	return &Services{
		Inventory:  NewInventoryService(productRepo, settingsRepo, txManager, events),
		Orders:     NewOrderService(orderRepo, productRepo, txManager, events),
		Settings:   NewSettingsService(settingsRepo, productRepo, events),
		Statistics: NewStatisticsService(productRepo, statsRepo),
		Revenue:    NewRevenueService(revenueRepo),
		Snapshots:  NewSnapshotService(productRepo, orderRepo, settingsRepo, txManager, events),
	}
}
