package models

import "testing"

func TestIsLowStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		alertQty int
		want     bool
	}{
		{name: "below threshold", stock: 4, alertQty: 5, want: true},
		{name: "exactly at threshold", stock: 5, alertQty: 5, want: false},
		{name: "above threshold", stock: 6, alertQty: 5, want: false},
		{name: "zero threshold uses default", stock: 9, alertQty: 0, want: true},
		{name: "zero threshold at default boundary", stock: 10, alertQty: 0, want: false},
		{name: "negative stock", stock: -1, alertQty: 5, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Product{Stock: tt.stock, AlertQty: tt.alertQty}
			if got := p.IsLowStock(); got != tt.want {
				t.Errorf("IsLowStock() with stock=%d alert=%d = %v, want %v",
					tt.stock, tt.alertQty, got, tt.want)
			}
		})
	}
}
