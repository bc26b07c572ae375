package services

import (
	"testing"

	"smartbiz-backend/internal/models"
)

func TestComputeSaleTotals(t *testing.T) {
	tests := []struct {
		name              string
		items             []models.CartItem
		additionalExpense float64
		vat               float64
		discount          float64
		paid              float64
		want              models.SaleTotals
	}{
		{
			name: "overpaid sale produces change and no due",
			items: []models.CartItem{
				{ProductID: 1, Name: "Pen", Price: 50, Qty: 2},
				{ProductID: 2, Name: "Notebook", Price: 100, Qty: 1},
			},
			vat:      10,
			discount: 20,
			paid:     230,
			want: models.SaleTotals{
				TotalQty:     3,
				Subtotal:     200,
				Payable:      190,
				DueAmount:    0,
				ChangeAmount: 40,
			},
		},
		{
			name: "underpaid sale produces due and no change",
			items: []models.CartItem{
				{ProductID: 1, Price: 100, Qty: 3},
			},
			paid: 120,
			want: models.SaleTotals{
				TotalQty:  3,
				Subtotal:  300,
				Payable:   300,
				DueAmount: 180,
			},
		},
		{
			name: "exact payment leaves both zero",
			items: []models.CartItem{
				{ProductID: 1, Price: 75, Qty: 2},
			},
			additionalExpense: 25,
			paid:              175,
			want: models.SaleTotals{
				TotalQty: 2,
				Subtotal: 150,
				Payable:  175,
			},
		},
		{
			name: "discount larger than subtotal still folds",
			items: []models.CartItem{
				{ProductID: 1, Price: 10, Qty: 1},
			},
			discount: 30,
			paid:     0,
			want: models.SaleTotals{
				TotalQty: 1,
				Subtotal: 10,
				Payable:  -20,
				// payable is negative so paid 0 already covers it
				ChangeAmount: 20,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeSaleTotals(tt.items, tt.additionalExpense, tt.vat, tt.discount, tt.paid)
			if got != tt.want {
				t.Errorf("ComputeSaleTotals() = %+v, want %+v", got, tt.want)
			}
			if got.DueAmount > 0 && got.ChangeAmount > 0 {
				t.Errorf("due %.2f and change %.2f are both positive", got.DueAmount, got.ChangeAmount)
			}
		})
	}
}

func TestComputeSaleTotalsEmptyCart(t *testing.T) {
	got := ComputeSaleTotals(nil, 0, 0, 0, 0)
	if got.Subtotal != 0 || got.TotalQty != 0 || got.Payable != 0 {
		t.Errorf("empty cart should produce zero totals, got %+v", got)
	}
}

func TestSaleStockEntriesSkipsFreeFormLines(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 3, Name: "Charger", Price: 450, Qty: 2},
		{Name: "Delivery surcharge", Price: 60, Qty: 1},
		{ProductID: 7, Name: "Earphones", Price: 300, Qty: 1},
	}

	entries := saleStockEntries(items, "txn-9")
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2 (free-form line must not touch stock)", len(entries))
	}
	if entries[0].ProductID != 3 || entries[0].QtyDelta != -2 {
		t.Errorf("entries[0] = %+v, want product 3 delta -2", entries[0])
	}
	if entries[1].ProductID != 7 || entries[1].QtyDelta != -1 {
		t.Errorf("entries[1] = %+v, want product 7 delta -1", entries[1])
	}
	for _, e := range entries {
		if e.Type != models.MovementSale {
			t.Errorf("entry type = %q, want sale", e.Type)
		}
		if e.ReferenceID != "txn-9" {
			t.Errorf("entry reference = %q, want txn-9", e.ReferenceID)
		}
	}
}

func TestSaleStockEntriesAllFreeForm(t *testing.T) {
	items := []models.CartItem{
		{Name: "Repair service", Price: 500, Qty: 1},
	}
	if entries := saleStockEntries(items, "txn-1"); len(entries) != 0 {
		t.Errorf("got %d entries, want none for a cart with no product references", len(entries))
	}
}
