package models

import "time"

// DefaultAlertQty is used for the low-stock flag when a product has no
// alert threshold configured.
const DefaultAlertQty = 10

type Product struct {
	ID              int       `json:"id"`
	Name            string    `json:"name"`
	SKU             string    `json:"sku"`
	Category        string    `json:"category"`
	Brand           string    `json:"brand"`
	Units           string    `json:"units"`
	Size            string    `json:"size"`
	Variations      string    `json:"variations"`
	Color           string    `json:"color"`
	Warranty        string    `json:"warranty"`
	MfgDate         string    `json:"mfg_date"`
	ExpDate         string    `json:"exp_date"`
	Cost            float64   `json:"cost"`
	WholesalePrice  float64   `json:"wholesale_price"`
	Price           float64   `json:"price"` // MRP / retail price
	VAT             float64   `json:"vat"`
	IsVATApplicable bool      `json:"is_vat_applicable"`
	Stock           int       `json:"stock"`
	AlertQty        int       `json:"alert_qty"`
	LowStock        bool      `json:"low_stock"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// IsLowStock reports whether stock has fallen strictly below the alert
// threshold. A product sitting exactly at the threshold is not flagged.
func (p *Product) IsLowStock() bool {
	threshold := p.AlertQty
	if threshold == 0 {
		threshold = DefaultAlertQty
	}
	return p.Stock < threshold
}

// SaveProductRequest carries the full attribute set for create and update.
// Missing numerics normalize to zero and missing strings to defaults in the
// service layer.
type SaveProductRequest struct {
	Name            string  `json:"name"`
	SKU             string  `json:"sku"`
	Category        string  `json:"category"`
	Brand           string  `json:"brand"`
	Units           string  `json:"units"`
	Size            string  `json:"size"`
	Variations      string  `json:"variations"`
	Color           string  `json:"color"`
	Warranty        string  `json:"warranty"`
	MfgDate         string  `json:"mfg_date"`
	ExpDate         string  `json:"exp_date"`
	Cost            float64 `json:"cost"`
	WholesalePrice  float64 `json:"wholesale_price"`
	Price           float64 `json:"price"`
	VAT             float64 `json:"vat"`
	IsVATApplicable bool    `json:"is_vat_applicable"`
	Stock           int     `json:"stock"`
	AlertQty        int     `json:"alert_qty"`
}

// StockValuation summarizes the inventory at cost and at retail price.
type StockValuation struct {
	TotalItems      int     `json:"total_items"`
	ValueAtCost     float64 `json:"value_at_cost"`
	ValueAtPrice    float64 `json:"value_at_price"`
	EstimatedProfit float64 `json:"estimated_profit"`
}
