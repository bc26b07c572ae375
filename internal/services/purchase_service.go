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

var ErrInvalidPurchase = errors.New("supplier, product, quantity and cost are required")

// PurchaseService records stock received from a supplier: one transaction
// insert, one stock increment with cost overwrite, one ledger entry, atomic.
type PurchaseService struct {
	DB              *pgxpool.Pool
	TransactionRepo *repositories.TransactionRepository
	ProductRepo     *repositories.ProductRepository
	StockLogRepo    *repositories.StockLogRepository
	PartyRepo       *repositories.PartyRepository
	Hub             *live.Hub
}

func NewPurchaseService(
	db *pgxpool.Pool,
	transactionRepo *repositories.TransactionRepository,
	productRepo *repositories.ProductRepository,
	stockLogRepo *repositories.StockLogRepository,
	partyRepo *repositories.PartyRepository,
	hub *live.Hub,
) *PurchaseService {
	return &PurchaseService{
		DB:              db,
		TransactionRepo: transactionRepo,
		ProductRepo:     productRepo,
		StockLogRepo:    stockLogRepo,
		PartyRepo:       partyRepo,
		Hub:             hub,
	}
}

// purchasePlan is everything a purchase writes: the transaction row, the
// ledger entry and the product's new unit cost.
type purchasePlan struct {
	txn     *models.Transaction
	entry   models.StockLog
	newCost float64
}

// buildPurchasePlan derives the writes for one purchase. The amount equals
// unit cost times quantity and is recorded fully paid; the ledger delta is
// positive; the product's unit cost is overwritten with the new purchase
// cost, not averaged.
func buildPurchasePlan(req *models.CreatePurchaseRequest, supplier *models.Party, product *models.Product) purchasePlan {
	total := req.UnitCost * float64(req.Qty)
	txn := &models.Transaction{
		ID:         uuid.NewString(),
		Type:       models.TransactionPurchase,
		PartyID:    &supplier.ID,
		PartyName:  supplier.Name,
		Amount:     total,
		PaidAmount: total,
		DueAmount:  0,
		CreatedAt:  timeutil.Now(),
	}
	return purchasePlan{
		txn: txn,
		entry: models.StockLog{
			ProductID:   req.ProductID,
			ProductName: product.Name,
			QtyDelta:    req.Qty,
			Type:        models.MovementPurchase,
			ReferenceID: txn.ID,
		},
		newCost: req.UnitCost,
	}
}

// Record validates and commits one purchase.
func (s *PurchaseService) Record(ctx context.Context, req *models.CreatePurchaseRequest) (*models.Transaction, error) {
	if req.SupplierID == 0 || req.ProductID == 0 || req.Qty <= 0 || req.UnitCost <= 0 {
		return nil, ErrInvalidPurchase
	}

	product, err := s.ProductRepo.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("product %d not found", req.ProductID)
	}

	supplier, err := s.PartyRepo.Get(ctx, req.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil || supplier.Type != models.PartySupplier {
		return nil, fmt.Errorf("supplier %d not found", req.SupplierID)
	}

	plan := buildPurchasePlan(req, supplier, product)
	txn := plan.txn

	batch := store.NewBatch(s.DB)
	batch.Add(s.TransactionRepo.InsertOp(txn))
	batch.Add(s.ProductRepo.AdjustStockOp(plan.entry.ProductID, plan.entry.QtyDelta))
	batch.Add(s.ProductRepo.SetCostOp(plan.entry.ProductID, plan.newCost))
	batch.Add(s.StockLogRepo.AppendOp(&plan.entry))

	if err := batch.Commit(ctx); err != nil {
		metrics.BatchFailures.Inc()
		return nil, fmt.Errorf("purchase commit: %w", err)
	}

	cache.InvalidateDashboardStats(ctx)
	metrics.StockMovements.WithLabelValues(string(models.MovementPurchase)).Inc()
	log.Printf("[Purchase] committed %s: product %d, qty %d, cost %.2f", txn.ID, req.ProductID, req.Qty, req.UnitCost)

	s.Hub.Publish(live.CollectionTransactions)
	s.Hub.Publish(live.CollectionProducts)
	s.Hub.Publish(live.CollectionStockLogs)
	return txn, nil
}

// ListPurchases returns the purchase history, newest first.
func (s *PurchaseService) ListPurchases(ctx context.Context) ([]models.Transaction, error) {
	return s.TransactionRepo.ListByType(ctx, models.TransactionPurchase, 0)
}
