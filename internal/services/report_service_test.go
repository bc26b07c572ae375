package services

import (
	"reflect"
	"testing"
	"time"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/timeutil"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{ID: "s1", Type: models.TransactionSale, Amount: 500, DueAmount: 100, DeliveryStatus: "Delivered"},
		{ID: "s2", Type: models.TransactionSale, Amount: 300, DeliveryStatus: "Pending", DeliveryMethod: "Courier"},
		{ID: "p1", Type: models.TransactionPurchase, Amount: 200},
		{ID: "e1", Type: models.TransactionExpense, Amount: 150},
		{ID: "e2", Type: models.TransactionExpense, Amount: 50, DueAmount: 20},
	}
}

func TestComputeDashboardStats(t *testing.T) {
	stats := ComputeDashboardStats(sampleTransactions())

	if stats.SalesTotal != 800 {
		t.Errorf("SalesTotal = %.2f, want 800", stats.SalesTotal)
	}
	if stats.ExpenseTotal != 200 {
		t.Errorf("ExpenseTotal = %.2f, want 200", stats.ExpenseTotal)
	}
	if stats.Profit != 600 {
		t.Errorf("Profit = %.2f, want 600", stats.Profit)
	}
	if stats.TotalDue != 120 {
		t.Errorf("TotalDue = %.2f, want 120", stats.TotalDue)
	}
	if stats.PendingDelivery != 1 {
		t.Errorf("PendingDelivery = %d, want 1", stats.PendingDelivery)
	}
}

func TestComputeDashboardStatsIdempotent(t *testing.T) {
	txns := sampleTransactions()
	first := ComputeDashboardStats(txns)
	second := ComputeDashboardStats(txns)
	if first != second {
		t.Errorf("repeated fold diverged: %+v vs %+v", first, second)
	}
}

func TestComputeDashboardStatsOrderIndependent(t *testing.T) {
	txns := sampleTransactions()
	reversed := make([]models.Transaction, len(txns))
	for i, tx := range txns {
		reversed[len(txns)-1-i] = tx
	}

	if ComputeDashboardStats(txns) != ComputeDashboardStats(reversed) {
		t.Error("fold result depends on transaction order")
	}
}

func TestComputeDashboardStatsEmpty(t *testing.T) {
	stats := ComputeDashboardStats(nil)
	if stats != (models.DashboardStats{}) {
		t.Errorf("empty snapshot should produce zero stats, got %+v", stats)
	}
}

func TestBuildDeliveryBoard(t *testing.T) {
	txns := []models.Transaction{
		{ID: "a", DeliveryStatus: "Pending"},
		{ID: "b", DeliveryStatus: "Pending"},
		{ID: "c", DeliveryStatus: "Shipped"},
		{ID: "d", DeliveryStatus: "Delivered"},
	}

	board := BuildDeliveryBoard(txns)
	if board.Pending != 2 || board.Shipped != 1 || board.Delivered != 1 {
		t.Errorf("counts = %d/%d/%d, want 2/1/1", board.Pending, board.Shipped, board.Delivered)
	}
	if len(board.Deliveries) != 4 {
		t.Errorf("len(Deliveries) = %d, want 4", len(board.Deliveries))
	}
}

func TestFlattenSoldItems(t *testing.T) {
	date := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	sales := []models.Transaction{
		{
			ID:        "t1",
			CreatedAt: date,
			Items: []models.CartItem{
				{Name: "Charger", Category: "Electronics", Brand: "Acme", Qty: 2, Price: 450},
				{Name: "Cable", Qty: 1, Price: 120},
			},
		},
	}

	items := FlattenSoldItems(sales, 10)
	want := []models.SoldItem{
		{TransactionID: "t1", Date: date, Category: "Electronics", Brand: "Acme", Name: "Charger", Qty: 2, Price: 450},
		{TransactionID: "t1", Date: date, Category: "General", Brand: "Generic", Name: "Cable", Qty: 1, Price: 120},
	}
	if !reflect.DeepEqual(items, want) {
		t.Errorf("FlattenSoldItems() = %+v, want %+v", items, want)
	}
}

func TestFlattenSoldItemsLimit(t *testing.T) {
	sales := []models.Transaction{
		{ID: "t1", Items: []models.CartItem{{Name: "A", Qty: 1}, {Name: "B", Qty: 1}}},
		{ID: "t2", Items: []models.CartItem{{Name: "C", Qty: 1}}},
	}

	items := FlattenSoldItems(sales, 2)
	if len(items) != 2 {
		t.Fatalf("len = %d, want 2", len(items))
	}
	if items[1].Name != "B" {
		t.Errorf("second item = %q, want B", items[1].Name)
	}
}

func TestComputeTodaySales(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, timeutil.BST)
	txns := []models.Transaction{
		{Type: models.TransactionSale, Amount: 500, CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, timeutil.BST)},
		{Type: models.TransactionSale, Amount: 120, CreatedAt: time.Date(2026, 3, 14, 0, 0, 0, 0, timeutil.BST)},
		{Type: models.TransactionSale, Amount: 900, CreatedAt: time.Date(2026, 3, 13, 23, 59, 0, 0, timeutil.BST)},
		{Type: models.TransactionExpense, Amount: 80, CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, timeutil.BST)},
	}

	if got := ComputeTodaySales(txns, now); got != 620 {
		t.Errorf("ComputeTodaySales = %.2f, want 620 (midnight sale counts, yesterday and expenses do not)", got)
	}
	if got := ComputeTodaySales(nil, now); got != 0 {
		t.Errorf("ComputeTodaySales(nil) = %.2f, want 0", got)
	}
}
