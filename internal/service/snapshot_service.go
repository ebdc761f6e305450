package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"musicshop/internal/model"
	"musicshop/internal/repository"
	"musicshop/internal/snapshot"
)

// SnapshotService moves the whole shop state in and out of the three
// snapshot documents
type SnapshotService interface {
	Export(ctx context.Context) (snapshot.Snapshot, error)
	Import(ctx context.Context, snap snapshot.Snapshot) error
}

type snapshotService struct {
	productRepo  repository.ProductRepository
	orderRepo    repository.OrderRepository
	settingsRepo repository.SettingsRepository
	txManager    repository.TransactionManager
	events       EventPublisher
}

func NewSnapshotService(
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	settingsRepo repository.SettingsRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) SnapshotService {
	return &snapshotService{
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		settingsRepo: settingsRepo,
		txManager:    txManager,
		events:       publisherOrDiscard(events),
	}
}

func (s *snapshotService) Export(ctx context.Context) (snapshot.Snapshot, error) {
	snap := snapshot.Empty()
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		if snap.Products, err = s.productRepo.All(txCtx); err != nil {
			return fmt.Errorf("failed to load catalog: %w", err)
		}
		if snap.Orders, err = s.orderRepo.All(txCtx); err != nil {
			return fmt.Errorf("failed to load orders: %w", err)
		}
		if snap.Config, err = s.settingsRepo.Get(txCtx); err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	return snap, nil
}

// Import replaces the stored state with snap. Records are restored as they
// are: no stock effect is applied for the imported orders.
func (s *snapshotService) Import(ctx context.Context, snap snapshot.Snapshot) error {
	base := time.Now().UTC().Truncate(time.Second)

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.orderRepo.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("failed to clear orders: %w", err)
		}
		if err := s.productRepo.DeleteAll(txCtx); err != nil {
			return fmt.Errorf("failed to clear catalog: %w", err)
		}

		for i := range snap.Products {
			product := snap.Products[i]
			// keeps the document order when listing
			product.CreatedAt = base.Add(time.Duration(i) * time.Millisecond)
			if err := s.productRepo.Save(txCtx, &product); err != nil {
				return fmt.Errorf("failed to restore product %s: %w", product.SKU, err)
			}
		}

		for i := range snap.Orders {
			order := snap.Orders[i]
			order.Date = order.Date.UTC()
			order.Items = append([]model.OrderItem(nil), order.Items...)
			for j := range order.Items {
				order.Items[j].ID = 0
				order.Items[j].OrderID = order.ID
			}
			if err := s.orderRepo.Create(txCtx, &order); err != nil {
				return fmt.Errorf("failed to restore order %s: %w", order.ID, err)
			}
		}

		if err := s.settingsRepo.Save(txCtx, snap.Config); err != nil {
			return fmt.Errorf("failed to restore settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("snapshot imported: %d products, %d orders", len(snap.Products), len(snap.Orders))
	s.events.Publish(EventSnapshotImported, map[string]interface{}{
		"products": len(snap.Products),
		"orders":   len(snap.Orders),
	})
	return nil
}
