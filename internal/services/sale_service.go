package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"smartbiz-backend/internal/cache"
	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/metrics"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/store"
	"smartbiz-backend/internal/timeutil"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmptyCart       = errors.New("cart is empty")
	ErrMissingCustomer = errors.New("customer name and phone are required")
)

// SaleService commits checkouts: one transaction record plus, per cart line,
// a stock decrement and a ledger entry, all in a single atomic batch.
type SaleService struct {
	DB              *pgxpool.Pool
	TransactionRepo *repositories.TransactionRepository
	ProductRepo     *repositories.ProductRepository
	StockLogRepo    *repositories.StockLogRepository
	Hub             *live.Hub
}

func NewSaleService(
	db *pgxpool.Pool,
	transactionRepo *repositories.TransactionRepository,
	productRepo *repositories.ProductRepository,
	stockLogRepo *repositories.StockLogRepository,
	hub *live.Hub,
) *SaleService {
	return &SaleService{
		DB:              db,
		TransactionRepo: transactionRepo,
		ProductRepo:     productRepo,
		StockLogRepo:    stockLogRepo,
		Hub:             hub,
	}
}

// ComputeSaleTotals derives the financial fields from the cart and the form
// inputs:
//
//	subtotal = Σ price × qty
//	payable  = subtotal + additional expense + vat − discount
//	due      = max(0, payable − paid)
//	change   = max(0, paid − payable)
//
// Due and change are mutually exclusive: at least one is always zero.
func ComputeSaleTotals(items []models.CartItem, additionalExpense, vat, discount, paid float64) models.SaleTotals {
	var totals models.SaleTotals
	for _, item := range items {
		totals.TotalQty += item.Qty
		totals.Subtotal += item.Price * float64(item.Qty)
	}
	totals.Payable = totals.Subtotal + additionalExpense + vat - discount
	if due := totals.Payable - paid; due > 0 {
		totals.DueAmount = due
	}
	if change := paid - totals.Payable; change > 0 {
		totals.ChangeAmount = change
	}
	return totals
}

// saleStockEntries builds the ledger entries for the stock-tracked lines of
// a sale. Free-form lines carry no product reference; they stay on the
// transaction but never touch stock or the ledger.
func saleStockEntries(items []models.CartItem, referenceID string) []models.StockLog {
	entries := make([]models.StockLog, 0, len(items))
	for _, item := range items {
		if item.ProductID == 0 {
			continue
		}
		entries = append(entries, models.StockLog{
			ProductID:   item.ProductID,
			ProductName: item.Name,
			QtyDelta:    -item.Qty,
			Type:        models.MovementSale,
			ReferenceID: referenceID,
		})
	}
	return entries
}

// Checkout validates the sale, derives its totals and commits the batch.
// Validation mirrors the form-side checks only; a failed commit leaves no
// partial state and is surfaced as-is for the caller to retry manually.
func (s *SaleService) Checkout(ctx context.Context, req *models.CreateSaleRequest) (*models.Transaction, error) {
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}
	if req.CustomerName == "" || req.CustomerPhone == "" {
		return nil, ErrMissingCustomer
	}

	totals := ComputeSaleTotals(req.Items, req.AdditionalExpense, req.VAT, req.Discount, req.PaidAmount)

	saleType := req.SaleType
	if saleType == "" {
		saleType = "retail"
	}
	deliveryStatus := "Delivered"
	if req.DeliveryMethod == "Courier" {
		deliveryStatus = "Pending"
	}

	txn := &models.Transaction{
		ID:                uuid.NewString(),
		Type:              models.TransactionSale,
		SaleType:          saleType,
		PartyID:           req.PartyID,
		PartyName:         req.CustomerName,
		PartyPhone:        req.CustomerPhone,
		PartyAddress:      req.CustomerAddress,
		Items:             req.Items,
		TotalQty:          totals.TotalQty,
		Subtotal:          totals.Subtotal,
		AdditionalExpense: req.AdditionalExpense,
		VAT:               req.VAT,
		Discount:          req.Discount,
		Amount:            totals.Payable,
		PaidAmount:        req.PaidAmount,
		DueAmount:         totals.DueAmount,
		ChangeAmount:      totals.ChangeAmount,
		PaymentMethod:     req.PaymentMethod,
		ServiceStaff:      req.ServiceStaff,
		Remarks:           req.Remarks,
		DeliveryStatus:    deliveryStatus,
		DeliveryMethod:    req.DeliveryMethod,
		CourierName:       req.CourierName,
		TrackingID:        req.TrackingID,
		CreatedAt:         timeutil.Now(),
	}

	entries := saleStockEntries(req.Items, txn.ID)

	batch := store.NewBatch(s.DB)
	batch.Add(s.TransactionRepo.InsertOp(txn))
	for i := range entries {
		batch.Add(s.ProductRepo.AdjustStockOp(entries[i].ProductID, entries[i].QtyDelta))
		batch.Add(s.StockLogRepo.AppendOp(&entries[i]))
	}

	if err := batch.Commit(ctx); err != nil {
		metrics.BatchFailures.Inc()
		return nil, fmt.Errorf("sale commit: %w", err)
	}

	cache.InvalidateDashboardStats(ctx)
	metrics.SalesCommitted.Inc()
	metrics.StockMovements.WithLabelValues(string(models.MovementSale)).Add(float64(len(entries)))
	log.Printf("[Sale] committed %s: %d items, amount %.2f", txn.ID, len(req.Items), txn.Amount)

	s.Hub.Publish(live.CollectionTransactions)
	s.Hub.Publish(live.CollectionProducts)
	s.Hub.Publish(live.CollectionStockLogs)
	return txn, nil
}

// ListSales returns the sale history, newest first.
func (s *SaleService) ListSales(ctx context.Context) ([]models.Transaction, error) {
	return s.TransactionRepo.ListByType(ctx, models.TransactionSale, 0)
}
