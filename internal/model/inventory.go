package model

import (
	"time"
)

// Default advisory thresholds for new catalog entries
const (
	DefaultMinStock = 2
	DefaultMaxStock = 20
)

// Product represents an item in the shop catalog. The JSON names match the
// persisted catalog snapshot.
type Product struct {
	SKU       string    `gorm:"type:varchar(64);primaryKey" json:"sku"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Brand     string    `gorm:"type:varchar(100);index" json:"brand"`
	Color     string    `gorm:"type:varchar(50)" json:"color,omitempty"`
	CostUSD   float64   `gorm:"column:cost_usd;type:double precision;not null;default:0" json:"costUsd"`
	Weight    float64   `gorm:"type:double precision;not null;default:0" json:"weight"`
	Stock     int       `gorm:"type:int;not null;default:0" json:"stock"` // may go negative when over-sold
	MinStock  int       `gorm:"type:int;not null;default:0" json:"minStock"`
	MaxStock  int       `gorm:"type:int;not null;default:0" json:"maxStock"`
	Price     float64   `gorm:"type:double precision;not null;default:0" json:"price"` // local currency
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// IsLowStock reports whether the advisory minimum has been reached
func (p Product) IsLowStock() bool {
	return p.Stock <= p.MinStock
}

// IsOverStock reports whether stock exceeds the advisory maximum
func (p Product) IsOverStock() bool {
	return p.Stock > p.MaxStock
}

// StockMovement describes one stock change applied by the order lifecycle
type StockMovement struct {
	SKU        string `json:"sku"`
	OrderID    string `json:"order_id"`
	Delta      int    `json:"delta"`
	StockAfter int    `json:"stock_after"`
}
