package models

import "time"

// TransactionType represents the kind of financial event recorded
type TransactionType string

const (
	TransactionSale     TransactionType = "sale"
	TransactionPurchase TransactionType = "purchase"
	TransactionExpense  TransactionType = "expense"
	TransactionTransfer TransactionType = "transfer_out"
)

// CartItem is one line of a sale or purchase cart.
type CartItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Brand     string  `json:"brand"`
	Price     float64 `json:"price"`
	Qty       int     `json:"qty"`
}

// Transaction is a sale, purchase, expense or transfer event. Immutable once
// written; there is no edit or void flow.
type Transaction struct {
	ID                string          `json:"id"`
	Type              TransactionType `json:"type"`
	SaleType          string          `json:"sale_type,omitempty"` // retail or wholesale
	PartyID           *int            `json:"party_id,omitempty"`
	PartyName         string          `json:"party_name,omitempty"`
	PartyPhone        string          `json:"party_phone,omitempty"`
	PartyAddress      string          `json:"party_address,omitempty"`
	Items             []CartItem      `json:"items,omitempty"`
	TotalQty          int             `json:"total_qty,omitempty"`
	Subtotal          float64         `json:"subtotal,omitempty"`
	AdditionalExpense float64         `json:"additional_expense,omitempty"`
	VAT               float64         `json:"vat,omitempty"`
	Discount          float64         `json:"discount,omitempty"`
	Amount            float64         `json:"amount"`
	PaidAmount        float64         `json:"paid_amount"`
	DueAmount         float64         `json:"due_amount"`
	ChangeAmount      float64         `json:"change_amount,omitempty"`
	PaymentMethod     string          `json:"payment_method,omitempty"`
	ServiceStaff      string          `json:"service_staff,omitempty"`
	Remarks           string          `json:"remarks,omitempty"`
	Category          string          `json:"category,omitempty"` // Expense category
	Note              string          `json:"note,omitempty"`
	DeliveryStatus    string          `json:"delivery_status,omitempty"`
	DeliveryMethod    string          `json:"delivery_method,omitempty"`
	CourierName       string          `json:"courier_name,omitempty"`
	TrackingID        string          `json:"tracking_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// CreateSaleRequest is the checkout form payload.
type CreateSaleRequest struct {
	SaleType          string     `json:"sale_type"`
	CustomerName      string     `json:"customer_name"`
	CustomerPhone     string     `json:"customer_phone"`
	CustomerAddress   string     `json:"customer_address"`
	PartyID           *int       `json:"party_id"`
	Items             []CartItem `json:"items"`
	AdditionalExpense float64    `json:"additional_expense"`
	VAT               float64    `json:"vat"`
	Discount          float64    `json:"discount"`
	PaidAmount        float64    `json:"paid_amount"`
	PaymentMethod     string     `json:"payment_method"`
	ServiceStaff      string     `json:"service_staff"`
	Remarks           string     `json:"remarks"`
	DeliveryMethod    string     `json:"delivery_method"`
	CourierName       string     `json:"courier_name"`
	TrackingID        string     `json:"tracking_id"`
}

// SaleTotals holds the derived financial fields computed before a sale is
// committed.
type SaleTotals struct {
	TotalQty     int     `json:"total_qty"`
	Subtotal     float64 `json:"subtotal"`
	Payable      float64 `json:"payable"`
	DueAmount    float64 `json:"due_amount"`
	ChangeAmount float64 `json:"change_amount"`
}

// CreatePurchaseRequest records stock received from a supplier.
type CreatePurchaseRequest struct {
	SupplierID int     `json:"supplier_id"`
	ProductID  int     `json:"product_id"`
	Qty        int     `json:"qty"`
	UnitCost   float64 `json:"unit_cost"`
}

// CreateExpenseRequest records a standalone expense.
type CreateExpenseRequest struct {
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Note     string  `json:"note"`
}

// DeliveryBoard groups courier transactions with per-status counts.
type DeliveryBoard struct {
	Pending    int           `json:"pending"`
	Shipped    int           `json:"shipped"`
	Delivered  int           `json:"delivered"`
	Deliveries []Transaction `json:"deliveries"`
}

// SoldItem is one flattened sale line for the sold-products feed.
type SoldItem struct {
	TransactionID string    `json:"transaction_id"`
	Date          time.Time `json:"date"`
	Category      string    `json:"category"`
	Brand         string    `json:"brand"`
	Name          string    `json:"name"`
	Qty           int       `json:"qty"`
	Price         float64   `json:"price"`
}
