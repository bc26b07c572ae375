package models

import "time"

// MovementType classifies a stock ledger entry
type MovementType string

const (
	MovementSale        MovementType = "sale"         // Cart line sold, negative delta
	MovementPurchase    MovementType = "purchase"     // Stock received from supplier, positive delta
	MovementTransferOut MovementType = "transfer_out" // Manual transfer to another location, negative delta
)

// StockLog is one immutable entry in the stock movement ledger. It is
// written in the same atomic batch as the product quantity adjustment it
// describes, so replaying the ledger always reproduces current stock.
type StockLog struct {
	ID          int          `json:"id"`
	ProductID   int          `json:"product_id"`
	ProductName string       `json:"product_name"` // Denormalized for display
	QtyDelta    int          `json:"qty_delta"`
	Type        MovementType `json:"type"`
	ReferenceID string       `json:"reference_id"` // Originating transaction id, empty for manual transfers
	Note        string       `json:"note"`
	CreatedAt   time.Time    `json:"created_at"`
}

// ReplayStock folds a product's ledger entries over an opening quantity.
// The result must match the product's current stock column; any drift means
// a write bypassed the batch committer.
func ReplayStock(opening int, logs []StockLog) int {
	stock := opening
	for _, l := range logs {
		stock += l.QtyDelta
	}
	return stock
}

// StockAuditRow reports ledger-versus-stock drift for one product. The
// replay starts from zero, so any stock set outside the batch committer
// (initial stock at creation, manual edits) shows up as drift.
type StockAuditRow struct {
	ProductID   int    `json:"product_id"`
	ProductName string `json:"product_name"`
	Stock       int    `json:"stock"`
	LedgerTotal int    `json:"ledger_total"`
	Drift       int    `json:"drift"`
}

// TransferRequest moves quantity out of a product's stock to a free-text
// destination. The destination is recorded on the ledger note only.
type TransferRequest struct {
	ProductID int    `json:"product_id"`
	Qty       int    `json:"qty"`
	ToLabel   string `json:"to_label"`
}
