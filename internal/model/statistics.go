package model

// StatisticsResponse aggregates catalog and pipeline figures for the dashboard
type StatisticsResponse struct {
	TotalProducts    int                 `json:"total_products"`
	TotalUnits       int                 `json:"total_units"`
	LowStock         []StockAlert        `json:"low_stock"`
	OverStock        []StockAlert        `json:"over_stock"`
	OrdersByStatus   map[OrderStatus]int `json:"orders_by_status"`
	CompletedRevenue float64             `json:"completed_revenue"`
	PipelineValue    float64             `json:"pipeline_value"` // pending + ready
	QuoteValue       float64             `json:"quote_value"`
	TopSellingItems  []ProductRanking    `json:"top_selling_items"`
}

// StockAlert is a product outside its advisory thresholds
type StockAlert struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Stock    int    `json:"stock"`
	MinStock int    `json:"min_stock"`
	MaxStock int    `json:"max_stock"`
}

// ProductRanking represents a ranked product based on accumulated quantities
type ProductRanking struct {
	SKU           string  `json:"sku"`
	Name          string  `json:"name"`
	TotalQuantity int     `json:"total_quantity"`
	TotalValue    float64 `json:"total_value"`
}
