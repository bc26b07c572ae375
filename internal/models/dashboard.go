package models

// DashboardStats are the headline totals recomputed from the transaction
// snapshot on every change. The fold is pure: running it twice over the same
// snapshot yields identical numbers.
type DashboardStats struct {
	SalesTotal      float64 `json:"sales_total"`
	TodaySales      float64 `json:"today_sales"`
	ExpenseTotal    float64 `json:"expense_total"`
	Profit          float64 `json:"profit"`
	TotalDue        float64 `json:"total_due"`
	PendingDelivery int     `json:"pending_delivery"`
}
