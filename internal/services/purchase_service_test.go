package services

import (
	"testing"

	"smartbiz-backend/internal/models"
)

func TestBuildPurchasePlan(t *testing.T) {
	supplierID := 4
	supplier := &models.Party{ID: supplierID, Name: "Rahim Traders", Type: models.PartySupplier}

	tests := []struct {
		name       string
		req        models.CreatePurchaseRequest
		product    models.Product
		wantAmount float64
	}{
		{
			name:       "five units at 20",
			req:        models.CreatePurchaseRequest{SupplierID: supplierID, ProductID: 2, Qty: 5, UnitCost: 20},
			product:    models.Product{ID: 2, Name: "USB Cable", Cost: 12, Stock: 8},
			wantAmount: 100,
		},
		{
			name:       "fractional cost",
			req:        models.CreatePurchaseRequest{SupplierID: supplierID, ProductID: 9, Qty: 3, UnitCost: 7.5},
			product:    models.Product{ID: 9, Name: "Notebook", Cost: 7.5, Stock: 0},
			wantAmount: 22.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := buildPurchasePlan(&tt.req, supplier, &tt.product)

			txn := plan.txn
			if txn.Type != models.TransactionPurchase {
				t.Errorf("txn.Type = %q, want purchase", txn.Type)
			}
			if txn.Amount != tt.wantAmount {
				t.Errorf("txn.Amount = %.2f, want %.2f", txn.Amount, tt.wantAmount)
			}
			if txn.PaidAmount != tt.wantAmount || txn.DueAmount != 0 {
				t.Errorf("purchase must be fully paid: paid %.2f due %.2f", txn.PaidAmount, txn.DueAmount)
			}
			if txn.PartyID == nil || *txn.PartyID != supplierID {
				t.Errorf("txn.PartyID = %v, want %d", txn.PartyID, supplierID)
			}

			if plan.entry.QtyDelta != tt.req.Qty {
				t.Errorf("entry.QtyDelta = %d, want +%d", plan.entry.QtyDelta, tt.req.Qty)
			}
			if plan.entry.Type != models.MovementPurchase {
				t.Errorf("entry.Type = %q, want purchase", plan.entry.Type)
			}
			if plan.entry.ReferenceID != txn.ID {
				t.Errorf("entry.ReferenceID = %q, want the transaction id %q", plan.entry.ReferenceID, txn.ID)
			}
		})
	}
}

func TestBuildPurchasePlanOverwritesCost(t *testing.T) {
	supplier := &models.Party{ID: 1, Name: "Karim Supplies", Type: models.PartySupplier}
	product := &models.Product{ID: 5, Name: "Power Bank", Cost: 850, Stock: 3}
	req := &models.CreatePurchaseRequest{SupplierID: 1, ProductID: 5, Qty: 2, UnitCost: 790}

	plan := buildPurchasePlan(req, supplier, product)
	if plan.newCost != 790 {
		t.Errorf("newCost = %.2f, want the purchase cost 790, not a blend with the old 850", plan.newCost)
	}
}
