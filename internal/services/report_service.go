package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"smartbiz-backend/internal/cache"
	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/timeutil"
)

// partyHistoryWindow caps the displayed per-party history.
const partyHistoryWindow = 20

var ErrPartyNotFound = errors.New("party not found")

// soldItemsWindow caps the sold-products feed.
const soldItemsWindow = 50

// ReportService recomputes the derived aggregate views. Every computation
// is a pure fold over the current snapshot: running it twice over the same
// data yields identical totals.
type ReportService struct {
	TransactionRepo *repositories.TransactionRepository
	PartyRepo       *repositories.PartyRepository
	Hub             *live.Hub
}

func NewReportService(
	transactionRepo *repositories.TransactionRepository,
	partyRepo *repositories.PartyRepository,
	hub *live.Hub,
) *ReportService {
	return &ReportService{
		TransactionRepo: transactionRepo,
		PartyRepo:       partyRepo,
		Hub:             hub,
	}
}

// ComputeDashboardStats folds the transaction snapshot into the headline
// totals. Order-independent; missing numerics were zeroed at decode.
func ComputeDashboardStats(txns []models.Transaction) models.DashboardStats {
	var stats models.DashboardStats
	for _, t := range txns {
		switch t.Type {
		case models.TransactionSale:
			stats.SalesTotal += t.Amount
		case models.TransactionExpense:
			stats.ExpenseTotal += t.Amount
		}
		if t.DueAmount > 0 {
			stats.TotalDue += t.DueAmount
		}
		if t.DeliveryStatus == "Pending" {
			stats.PendingDelivery++
		}
	}
	stats.Profit = stats.SalesTotal - stats.ExpenseTotal
	return stats
}

// ComputeTodaySales sums the sale amounts recorded within the business day
// containing now. Day boundaries follow Bangladesh time regardless of the
// stored timezone.
func ComputeTodaySales(txns []models.Transaction, now time.Time) float64 {
	dayStart := timeutil.StartOfDay(now)
	dayEnd := timeutil.EndOfDay(now)

	var total float64
	for _, t := range txns {
		if t.Type != models.TransactionSale {
			continue
		}
		created := timeutil.ToBST(t.CreatedAt)
		if created.Before(dayStart) || created.After(dayEnd) {
			continue
		}
		total += t.Amount
	}
	return total
}

// BuildDeliveryBoard filters courier transactions and counts them per
// status.
func BuildDeliveryBoard(txns []models.Transaction) models.DeliveryBoard {
	board := models.DeliveryBoard{Deliveries: []models.Transaction{}}
	for _, t := range txns {
		board.Deliveries = append(board.Deliveries, t)
		switch t.DeliveryStatus {
		case "Pending":
			board.Pending++
		case "Shipped":
			board.Shipped++
		case "Delivered":
			board.Delivered++
		}
	}
	return board
}

// FlattenSoldItems expands sale transactions into individual cart lines,
// newest sales first, capped at limit.
func FlattenSoldItems(sales []models.Transaction, limit int) []models.SoldItem {
	items := []models.SoldItem{}
	for _, sale := range sales {
		for _, line := range sale.Items {
			category := line.Category
			if category == "" {
				category = "General"
			}
			brand := line.Brand
			if brand == "" {
				brand = "Generic"
			}
			items = append(items, models.SoldItem{
				TransactionID: sale.ID,
				Date:          sale.CreatedAt,
				Category:      category,
				Brand:         brand,
				Name:          line.Name,
				Qty:           line.Qty,
				Price:         line.Price,
			})
			if len(items) >= limit {
				return items
			}
		}
	}
	return items
}

// DashboardStats returns the headline totals, served from the cache when
// fresh.
func (s *ReportService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	if data, ok := cache.GetCachedDashboardStats(ctx); ok {
		var stats models.DashboardStats
		if err := json.Unmarshal(data, &stats); err == nil {
			return &stats, nil
		}
	}

	txns, err := s.TransactionRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	stats := ComputeDashboardStats(txns)
	stats.TodaySales = ComputeTodaySales(txns, timeutil.Now())

	if data, err := json.Marshal(stats); err == nil {
		cache.CacheDashboardStats(ctx, data)
	}
	return &stats, nil
}

// Deliveries returns the courier board.
func (s *ReportService) Deliveries(ctx context.Context) (*models.DeliveryBoard, error) {
	txns, err := s.TransactionRepo.ListCourier(ctx)
	if err != nil {
		return nil, err
	}
	board := BuildDeliveryBoard(txns)
	return &board, nil
}

// SoldItems returns the flattened recent sale lines.
func (s *ReportService) SoldItems(ctx context.Context) ([]models.SoldItem, error) {
	sales, err := s.TransactionRepo.ListByType(ctx, models.TransactionSale, soldItemsWindow)
	if err != nil {
		return nil, err
	}
	return FlattenSoldItems(sales, soldItemsWindow), nil
}

// PartyHistory returns a party's recent transactions with summary totals.
func (s *ReportService) PartyHistory(ctx context.Context, partyID int) (*models.PartyHistory, error) {
	party, err := s.PartyRepo.Get(ctx, partyID)
	if err != nil {
		return nil, err
	}
	if party == nil {
		return nil, ErrPartyNotFound
	}

	txns, err := s.TransactionRepo.ListByParty(ctx, partyID, partyHistoryWindow)
	if err != nil {
		return nil, err
	}

	history := &models.PartyHistory{
		Party:        party,
		TotalDue:     party.Balance,
		Transactions: txns,
	}
	for _, t := range txns {
		history.TotalSpent += t.Amount
	}
	return history, nil
}

// Start watches the hub and drops the cached dashboard stats whenever the
// transaction snapshot changes, so the next read recomputes.
func (s *ReportService) Start(ctx context.Context) {
	sub := s.Hub.Subscribe(live.CollectionTransactions)
	go func() {
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-sub.C:
				if !ok {
					return
				}
				invalidateCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				cache.InvalidateDashboardStats(invalidateCtx)
				cancel()
			}
		}
	}()
	log.Printf("[Report] dashboard cache invalidator running")
}
