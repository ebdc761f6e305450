// Package pricing holds the shop's money arithmetic. Values are stored as
// float64 but computed with decimal to keep sums stable.
package pricing

import (
	"github.com/shopspring/decimal"

	"musicshop/internal/model"
)

// LandedCost converts an imported unit's source-currency cost into local
// currency and adds freight by weight plus the fixed packaging fee:
//
//	unitCost*exchangeRate + weight*courierRate + packaging
//
// Inputs are not validated; negative values produce negative results.
func LandedCost(unitCost, weight float64, cfg model.AppConfig) float64 {
	goods := decimal.NewFromFloat(unitCost).Mul(decimal.NewFromFloat(cfg.ExchangeRate))
	freight := decimal.NewFromFloat(weight).Mul(decimal.NewFromFloat(cfg.CourierRate))
	return goods.Add(freight).Add(decimal.NewFromFloat(cfg.Packaging)).InexactFloat64()
}

// Margin is the selling price minus the landed cost of a product
func Margin(p model.Product, cfg model.AppConfig) float64 {
	landed := decimal.NewFromFloat(LandedCost(p.CostUSD, p.Weight, cfg))
	return decimal.NewFromFloat(p.Price).Sub(landed).InexactFloat64()
}

// LineTotal is quantity × unit price
func LineTotal(quantity int, price float64) float64 {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity))).InexactFloat64()
}

// OrderTotal sums the item totals
func OrderTotal(items []model.OrderItem) float64 {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(decimal.NewFromFloat(item.Total))
	}
	return sum.InexactFloat64()
}

// SumOrders adds up order totals
func SumOrders(orders []model.Order) float64 {
	sum := decimal.Zero
	for _, o := range orders {
		sum = sum.Add(decimal.NewFromFloat(o.Total))
	}
	return sum.InexactFloat64()
}
