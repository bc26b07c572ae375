package services

import (
	"testing"

	"smartbiz-backend/internal/models"
)

func TestBuildTransferEntry(t *testing.T) {
	product := &models.Product{ID: 6, Name: "Router", Stock: 50}
	req := &models.TransferRequest{ProductID: 6, Qty: 10, ToLabel: "Warehouse B"}

	entry := buildTransferEntry(req, product)

	if entry.QtyDelta != -10 {
		t.Errorf("QtyDelta = %d, want -10", entry.QtyDelta)
	}
	if entry.Type != models.MovementTransferOut {
		t.Errorf("Type = %q, want transfer_out", entry.Type)
	}
	if entry.Note != "Transferred to Warehouse B" {
		t.Errorf("Note = %q", entry.Note)
	}

	if got := models.ReplayStock(product.Stock, []models.StockLog{entry}); got != 40 {
		t.Errorf("replayed stock = %d, want 40", got)
	}
}
