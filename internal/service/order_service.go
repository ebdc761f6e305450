package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"musicshop/internal/lifecycle"
	"musicshop/internal/model"
	"musicshop/internal/pricing"
	"musicshop/internal/repository"
	"musicshop/pkg/pagination"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DTOs
type OrderItemRequest struct {
	SKU      string   `json:"sku" binding:"required"`
	Quantity int      `json:"quantity" binding:"required,gt=0"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"` // defaults to the catalog price
}

type CreateOrderRequest struct {
	CustomerName string             `json:"customer_name" binding:"required"`
	Status       model.OrderStatus  `json:"status" binding:"omitempty,oneof=quote pending"`
	Items        []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderRequest lists the fields of an order that may change after creation
type UpdateOrderRequest struct {
	CustomerName *string            `json:"customer_name"`
	Status       *model.OrderStatus `json:"status" binding:"omitempty,oneof=quote pending ready completed cancelled"`
}

type MoveOrderRequest struct {
	Column lifecycle.Column `json:"column" binding:"required,oneof=prospects inProgress completed"`
}

// OrderResult is an order after a mutation together with the stock it moved
type OrderResult struct {
	Order          *model.Order          `json:"order"`
	StockMovements []model.StockMovement `json:"stock_movements"`
}

// OrderTab selects a group of statuses for listing
type OrderTab string

const (
	OrderTabAll     OrderTab = "all"
	OrderTabQuotes  OrderTab = "quotes"
	OrderTabActive  OrderTab = "active"
	OrderTabHistory OrderTab = "history"
)

var orderTabColumns = map[OrderTab]lifecycle.Column{
	OrderTabQuotes:  lifecycle.ColumnProspects,
	OrderTabActive:  lifecycle.ColumnInProgress,
	OrderTabHistory: lifecycle.ColumnCompleted,
}

type OrderListFilter struct {
	Tab    OrderTab
	Search string
	Page   int
	Limit  int
}

type OrderService interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResult, error)
	UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (OrderResult, error)
	ChangeStatus(ctx context.Context, id string, status model.OrderStatus) (OrderResult, error)
	AdvanceOrder(ctx context.Context, id string) (OrderResult, error)
	MoveOrder(ctx context.Context, id string, column lifecycle.Column) (OrderResult, error)
	DeleteOrder(ctx context.Context, id string) error
	GetOrder(ctx context.Context, id string) (*model.Order, error)
	ListOrders(ctx context.Context, filter OrderListFilter) ([]model.Order, int64, error)
}

// orderService is the only writer of order status. All mutations are
// serialised by mu and run in one transaction, so each real status change
// moves stock exactly once.
type orderService struct {
	mu          sync.Mutex
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	txManager   repository.TransactionManager
	events      EventPublisher
	now         func() time.Time
}

func NewOrderService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	txManager repository.TransactionManager,
	events EventPublisher,
) OrderService {
	return &orderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		txManager:   txManager,
		events:      publisherOrDiscard(events),
		now: func() time.Time {
			return time.Now().UTC().Truncate(time.Millisecond)
		},
	}
}

func (s *orderService) CreateOrder(ctx context.Context, req CreateOrderRequest) (OrderResult, error) {
	customer := strings.TrimSpace(req.CustomerName)
	if customer == "" {
		return OrderResult{}, fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
	}
	status := req.Status
	if status == "" {
		status = model.OrderStatusQuote
	}
	if status != model.OrderStatusQuote && status != model.OrderStatusPending {
		return OrderResult{}, fmt.Errorf("%w: orders start as quote or pending, not %q", ErrInvalidOrder, status)
	}
	if len(req.Items) == 0 {
		return OrderResult{}, fmt.Errorf("%w: at least one item is required", ErrInvalidOrder)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var result OrderResult
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		items := make([]model.OrderItem, 0, len(req.Items))
		for _, itemReq := range req.Items {
			if itemReq.Quantity <= 0 {
				return fmt.Errorf("%w: quantity for %s must be positive", ErrInvalidOrder, itemReq.SKU)
			}
			product, err := s.productRepo.FindBySKU(txCtx, itemReq.SKU)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: %s", ErrProductNotFound, itemReq.SKU)
				}
				return fmt.Errorf("failed to find product %s: %w", itemReq.SKU, err)
			}

			price := product.Price
			if itemReq.Price != nil {
				price = *itemReq.Price
			}
			if price < 0 {
				return fmt.Errorf("%w: price for %s cannot be negative", ErrInvalidOrder, itemReq.SKU)
			}

			items = append(items, model.OrderItem{
				SKU:      product.SKU,
				Name:     product.Name,
				Quantity: itemReq.Quantity,
				Price:    price,
				Total:    pricing.LineTotal(itemReq.Quantity, price),
			})
		}

		order := &model.Order{
			ID:           uuid.NewString(),
			CustomerName: customer,
			Date:         s.now(),
			Items:        items,
			Total:        pricing.OrderTotal(items),
			Status:       status,
		}
		if err := s.orderRepo.Create(txCtx, order); err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		movements, err := s.applyStock(txCtx, order.ID, order.Items, lifecycle.OnCreate(status))
		if err != nil {
			return err
		}

		result = OrderResult{Order: order, StockMovements: movements}
		return nil
	})
	if err != nil {
		return OrderResult{}, err
	}

	s.events.Publish(EventOrderCreated, result.Order)
	s.publishMovements(result.StockMovements)
	return result, nil
}

// UpdateOrder changes the status and/or customer name of a stored order. The
// previous state is read from the store under lock; the stock effect of the
// status change is applied before the new state is written.
func (s *orderService) UpdateOrder(ctx context.Context, id string, req UpdateOrderRequest) (OrderResult, error) {
	return s.mutate(ctx, id, func(prev *model.Order) (model.OrderStatus, string, error) {
		status := prev.Status
		if req.Status != nil {
			if _, err := model.ParseOrderStatus(string(*req.Status)); err != nil {
				return "", "", fmt.Errorf("%w: %v", ErrInvalidOrder, err)
			}
			status = *req.Status
		}
		customer := prev.CustomerName
		if req.CustomerName != nil {
			customer = strings.TrimSpace(*req.CustomerName)
			if customer == "" {
				return "", "", fmt.Errorf("%w: customer name is required", ErrInvalidOrder)
			}
		}
		return status, customer, nil
	})
}

func (s *orderService) ChangeStatus(ctx context.Context, id string, status model.OrderStatus) (OrderResult, error) {
	return s.UpdateOrder(ctx, id, UpdateOrderRequest{Status: &status})
}

// AdvanceOrder moves the order one step forward along the pipeline
func (s *orderService) AdvanceOrder(ctx context.Context, id string) (OrderResult, error) {
	return s.mutate(ctx, id, func(prev *model.Order) (model.OrderStatus, string, error) {
		next, ok := lifecycle.Next(prev.Status)
		if !ok {
			return "", "", fmt.Errorf("order in status %s cannot advance: %w", prev.Status, ErrInvalidTransition)
		}
		return next, prev.CustomerName, nil
	})
}

// MoveOrder applies a drop onto a board column
func (s *orderService) MoveOrder(ctx context.Context, id string, column lifecycle.Column) (OrderResult, error) {
	if _, err := lifecycle.ParseColumn(string(column)); err != nil {
		return OrderResult{}, fmt.Errorf("%w: %v", ErrInvalidOrder, err)
	}
	return s.mutate(ctx, id, func(prev *model.Order) (model.OrderStatus, string, error) {
		return lifecycle.TargetForColumn(prev.Status, column), prev.CustomerName, nil
	})
}

type decideFunc func(prev *model.Order) (status model.OrderStatus, customerName string, err error)

func (s *orderService) mutate(ctx context.Context, id string, decide decideFunc) (OrderResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var result OrderResult
	var statusChanged bool
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		prev, err := s.orderRepo.FindByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
			}
			return fmt.Errorf("failed to load order: %w", err)
		}

		status, customer, err := decide(prev)
		if err != nil {
			return err
		}
		if err := lifecycle.CheckTransition(prev.Status, status); err != nil {
			return err
		}

		movements, err := s.applyStock(txCtx, prev.ID, prev.Items, lifecycle.StockEffect(prev.Status, status))
		if err != nil {
			return err
		}

		if err := s.orderRepo.UpdateFields(txCtx, prev.ID, status, customer); err != nil {
			return fmt.Errorf("failed to update order: %w", err)
		}

		statusChanged = prev.Status != status
		prev.Status = status
		prev.CustomerName = customer
		result = OrderResult{Order: prev, StockMovements: movements}
		return nil
	})
	if err != nil {
		return OrderResult{}, err
	}

	if statusChanged {
		log.Printf("order %s moved to %s (%d stock movements)", id, result.Order.Status, len(result.StockMovements))
	}
	s.events.Publish(EventOrderUpdated, result.Order)
	s.publishMovements(result.StockMovements)
	return result, nil
}

// DeleteOrder removes the order and its items. Stock is never touched,
// whatever the order's status was.
func (s *orderService) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := false
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.orderRepo.Delete(txCtx, id)
		if err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if !deleted {
		return fmt.Errorf("%w: %s", ErrOrderNotFound, id)
	}

	s.events.Publish(EventOrderDeleted, map[string]interface{}{"id": id})
	return nil
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.orderRepo.FindByIDWithItems(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, filter OrderListFilter) ([]model.Order, int64, error) {
	p := pagination.Normalize(filter.Page, filter.Limit)

	repoFilter := repository.OrderFilter{
		Search: strings.TrimSpace(filter.Search),
		Page:   p.Page,
		Limit:  p.Limit,
	}
	switch filter.Tab {
	case "", OrderTabAll:
	default:
		column, ok := orderTabColumns[filter.Tab]
		if !ok {
			return nil, 0, fmt.Errorf("%w: unknown tab %q", ErrInvalidOrder, filter.Tab)
		}
		repoFilter.Statuses = column.Statuses()
	}

	orders, total, err := s.orderRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, total, nil
}

// applyStock adds effect × quantity to the stock of every item's product.
// Items whose product no longer exists are skipped.
func (s *orderService) applyStock(ctx context.Context, orderID string, items []model.OrderItem, effect lifecycle.Effect) ([]model.StockMovement, error) {
	movements := make([]model.StockMovement, 0, len(items))
	if effect == lifecycle.None {
		return movements, nil
	}

	for _, m := range lifecycle.Movements(orderID, items, effect) {
		product, err := s.productRepo.FindBySKUForUpdate(ctx, m.SKU)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("order %s: product %s no longer exists, skipping stock %s", orderID, m.SKU, effect)
				continue
			}
			return nil, fmt.Errorf("failed to lock product %s: %w", m.SKU, err)
		}

		m.StockAfter = product.Stock + m.Delta
		if err := s.productRepo.UpdateStock(ctx, product.SKU, m.StockAfter); err != nil {
			return nil, fmt.Errorf("failed to update stock for %s: %w", m.SKU, err)
		}
		movements = append(movements, m)
	}
	return movements, nil
}

func (s *orderService) publishMovements(movements []model.StockMovement) {
	if len(movements) == 0 {
		return
	}
	s.events.Publish(EventStockChanged, movements)
}
