package service

import (
	"errors"

	"musicshop/internal/lifecycle"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidOrder    = errors.New("invalid order")
	ErrInvalidProduct  = errors.New("invalid product")
	ErrInvalidSettings = errors.New("invalid settings")

	// ErrInvalidTransition is returned for status changes the pipeline forbids
	ErrInvalidTransition = lifecycle.ErrInvalidTransition
)

// Events pushed to connected clients after a change is committed
const (
	EventOrderCreated     = "order_created"
	EventOrderUpdated     = "order_updated"
	EventOrderDeleted     = "order_deleted"
	EventStockChanged     = "stock_changed"
	EventProductSaved     = "product_saved"
	EventProductDeleted   = "product_deleted"
	EventSettingsUpdated  = "settings_updated"
	EventSnapshotImported = "snapshot_imported"
)

// EventPublisher fans committed changes out to listeners. Implementations
// must not block.
type EventPublisher interface {
	Publish(event string, data interface{})
}

type discardPublisher struct{}

func (discardPublisher) Publish(string, interface{}) {}

func publisherOrDiscard(p EventPublisher) EventPublisher {
	if p == nil {
		return discardPublisher{}
	}
	return p
}
