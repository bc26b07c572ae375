package services

import (
	"strings"
	"testing"

	"smartbiz-backend/internal/models"
)

func TestNormalizeDefaults(t *testing.T) {
	p := normalize(&models.SaveProductRequest{Name: "Soap"})

	if !strings.HasPrefix(p.SKU, "SKU-") {
		t.Errorf("SKU = %q, want generated SKU- prefix", p.SKU)
	}
	if p.Category != "General" {
		t.Errorf("Category = %q, want General", p.Category)
	}
	if p.Units != "Pcs" {
		t.Errorf("Units = %q, want Pcs", p.Units)
	}
	if p.Stock != 0 || p.Price != 0 {
		t.Errorf("missing numerics should stay zero, got stock=%d price=%.2f", p.Stock, p.Price)
	}
}

func TestNormalizeKeepsProvidedValues(t *testing.T) {
	p := normalize(&models.SaveProductRequest{
		Name:     "Rice 5kg",
		SKU:      "SKU-RICE5",
		Category: "Grocery",
		Units:    "Bag",
		Stock:    40,
		Cost:     300,
		Price:    380,
	})

	if p.SKU != "SKU-RICE5" || p.Category != "Grocery" || p.Units != "Bag" {
		t.Errorf("provided fields were overwritten: %+v", p)
	}
	if p.Stock != 40 || p.Cost != 300 || p.Price != 380 {
		t.Errorf("numerics were not carried through: %+v", p)
	}
}

func TestComputeValuation(t *testing.T) {
	products := []models.Product{
		{Stock: 10, Cost: 50, Price: 80},
		{Stock: 5, Cost: 200, Price: 260},
		{Stock: 0, Cost: 999, Price: 1500},
	}

	v := ComputeValuation(products)
	if v.TotalItems != 15 {
		t.Errorf("TotalItems = %d, want 15", v.TotalItems)
	}
	if v.ValueAtCost != 1500 {
		t.Errorf("ValueAtCost = %.2f, want 1500", v.ValueAtCost)
	}
	if v.ValueAtPrice != 2100 {
		t.Errorf("ValueAtPrice = %.2f, want 2100", v.ValueAtPrice)
	}
	if v.EstimatedProfit != 600 {
		t.Errorf("EstimatedProfit = %.2f, want 600", v.EstimatedProfit)
	}
}

func TestComputeValuationEmpty(t *testing.T) {
	v := ComputeValuation(nil)
	if v != (models.StockValuation{}) {
		t.Errorf("empty catalog should produce zero valuation, got %+v", v)
	}
}
