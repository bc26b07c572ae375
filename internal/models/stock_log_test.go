package models

import "testing"

func TestReplayStock(t *testing.T) {
	tests := []struct {
		name    string
		opening int
		logs    []StockLog
		want    int
	}{
		{
			name:    "no movements",
			opening: 12,
			want:    12,
		},
		{
			name:    "sale purchase and transfer",
			opening: 50,
			logs: []StockLog{
				{QtyDelta: -3, Type: MovementSale},
				{QtyDelta: 20, Type: MovementPurchase},
				{QtyDelta: -10, Type: MovementTransferOut},
			},
			want: 57,
		},
		{
			name:    "concurrent sales drive stock negative",
			opening: 1,
			logs: []StockLog{
				{QtyDelta: -1, Type: MovementSale},
				{QtyDelta: -1, Type: MovementSale},
			},
			want: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ReplayStock(tt.opening, tt.logs); got != tt.want {
				t.Errorf("ReplayStock(%d, logs) = %d, want %d", tt.opening, got, tt.want)
			}
		})
	}
}

func TestReplayStockOrderIndependent(t *testing.T) {
	logs := []StockLog{
		{QtyDelta: -5},
		{QtyDelta: 8},
		{QtyDelta: -2},
	}
	reversed := []StockLog{logs[2], logs[1], logs[0]}

	if ReplayStock(10, logs) != ReplayStock(10, reversed) {
		t.Error("replay result depends on log order")
	}
}
