package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/metrics"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/store"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidTransfer = errors.New("product, quantity and destination are required")

// StockService handles manual stock transfers and the ledger audit.
type StockService struct {
	DB           *pgxpool.Pool
	ProductRepo  *repositories.ProductRepository
	StockLogRepo *repositories.StockLogRepository
	Hub          *live.Hub
}

func NewStockService(
	db *pgxpool.Pool,
	productRepo *repositories.ProductRepository,
	stockLogRepo *repositories.StockLogRepository,
	hub *live.Hub,
) *StockService {
	return &StockService{
		DB:           db,
		ProductRepo:  productRepo,
		StockLogRepo: stockLogRepo,
		Hub:          hub,
	}
}

// buildTransferEntry derives the ledger entry for a manual transfer out.
// The delta is negative; replaying it over the product's current stock
// yields the post-transfer count.
func buildTransferEntry(req *models.TransferRequest, product *models.Product) models.StockLog {
	return models.StockLog{
		ProductID:   req.ProductID,
		ProductName: product.Name,
		QtyDelta:    -req.Qty,
		Type:        models.MovementTransferOut,
		Note:        fmt.Sprintf("Transferred to %s", req.ToLabel),
	}
}

// Transfer moves quantity out to a free-text destination: one stock
// decrement plus one ledger entry, atomic. No transaction record is written,
// matching the ledger-only shape of a manual transfer.
func (s *StockService) Transfer(ctx context.Context, req *models.TransferRequest) error {
	if req.ProductID == 0 || req.Qty <= 0 || req.ToLabel == "" {
		return ErrInvalidTransfer
	}

	product, err := s.ProductRepo.Get(ctx, req.ProductID)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("product %d not found", req.ProductID)
	}

	entry := buildTransferEntry(req, product)

	batch := store.NewBatch(s.DB)
	batch.Add(s.ProductRepo.AdjustStockOp(entry.ProductID, entry.QtyDelta))
	batch.Add(s.StockLogRepo.AppendOp(&entry))

	if err := batch.Commit(ctx); err != nil {
		metrics.BatchFailures.Inc()
		return fmt.Errorf("transfer commit: %w", err)
	}

	metrics.StockMovements.WithLabelValues(string(models.MovementTransferOut)).Inc()
	log.Printf("[Stock] transferred %d x product %d to %q", req.Qty, req.ProductID, req.ToLabel)

	s.Hub.Publish(live.CollectionProducts)
	s.Hub.Publish(live.CollectionStockLogs)
	return nil
}

// Ledger returns the newest ledger entries. With a product id it returns
// that product's full history oldest first, so the caller can replay it.
func (s *StockService) Ledger(ctx context.Context, limit, productID int) ([]models.StockLog, error) {
	if productID != 0 {
		return s.StockLogRepo.ListByProduct(ctx, productID)
	}
	if limit <= 0 {
		limit = 50
	}
	return s.StockLogRepo.ListRecent(ctx, limit)
}

// Audit replays the ledger from zero for every product and reports drift
// against the stored stock count. Initial stock set at product creation
// bypasses the ledger, so seeded products legitimately show their opening
// quantity as drift; anything else means a write skipped the batch
// committer.
func (s *StockService) Audit(ctx context.Context) ([]models.StockAuditRow, error) {
	products, err := s.ProductRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	totals, err := s.StockLogRepo.LedgerTotals(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]models.StockAuditRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, models.StockAuditRow{
			ProductID:   p.ID,
			ProductName: p.Name,
			Stock:       p.Stock,
			LedgerTotal: totals[p.ID],
			Drift:       p.Stock - totals[p.ID],
		})
	}
	return rows, nil
}
