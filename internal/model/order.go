package model

import (
	"fmt"
	"time"
)

// OrderStatus is the position of an order in the sales pipeline
type OrderStatus string

const (
	OrderStatusQuote     OrderStatus = "quote"     // unconfirmed interest, reserves nothing
	OrderStatusPending   OrderStatus = "pending"   // confirmed, awaiting payment/preparation
	OrderStatusReady     OrderStatus = "ready"     // ready for delivery
	OrderStatusCompleted OrderStatus = "completed" // delivered and closed
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderStatuses lists every status in pipeline order
var OrderStatuses = []OrderStatus{
	OrderStatusQuote,
	OrderStatusPending,
	OrderStatusReady,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// ParseOrderStatus converts a raw string into a known OrderStatus
func ParseOrderStatus(raw string) (OrderStatus, error) {
	for _, s := range OrderStatuses {
		if string(s) == raw {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown order status %q", raw)
}

// Order is a customer sale moving through the pipeline. Items, Total and Date
// are frozen once the order is created; only Status and CustomerName change.
type Order struct {
	ID           string      `gorm:"type:varchar(36);primaryKey" json:"id"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customerName"`
	Date         time.Time   `gorm:"not null;index" json:"date"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total        float64     `gorm:"type:double precision;not null" json:"total"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	UpdatedAt    time.Time   `json:"-"`
}

// OrderItem is a line owned by exactly one Order
type OrderItem struct {
	ID       uint    `gorm:"primaryKey" json:"-"`
	OrderID  string  `gorm:"type:varchar(36);not null;index" json:"-"`
	Position int     `gorm:"not null" json:"-"`
	SKU      string  `gorm:"type:varchar(64);not null;index" json:"sku"` // not re-validated after creation
	Name     string  `gorm:"type:varchar(255)" json:"name"`
	Quantity int     `gorm:"type:int;not null" json:"quantity"`
	Price    float64 `gorm:"type:double precision;not null" json:"price"`
	Total    float64 `gorm:"type:double precision;not null" json:"total"`
}
