package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type StockLogRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewStockLogRepository(db *pgxpool.Pool, tenantID string) *StockLogRepository {
	return &StockLogRepository{DB: db, TenantID: tenantID}
}

// AppendOp returns a batch op inserting one immutable ledger entry. Entries
// are only ever written through the same batch that adjusts the product's
// stock.
func (r *StockLogRepository) AppendOp(log *models.StockLog) store.Op {
	return func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`INSERT INTO stock_logs(tenant_id, product_id, product_name, qty_delta,
			        movement_type, reference_id, note)
			 VALUES($1,$2,$3,$4,$5,$6,$7)`,
			r.TenantID, log.ProductID, log.ProductName, log.QtyDelta,
			string(log.Type), log.ReferenceID, log.Note)
		if err != nil {
			return fmt.Errorf("append stock log: %w", err)
		}
		return nil
	}
}

// ListRecent returns the newest ledger entries, capped at limit.
func (r *StockLogRepository) ListRecent(ctx context.Context, limit int) ([]models.StockLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, product_id, product_name, qty_delta, movement_type, reference_id, note, created_at
		 FROM stock_logs WHERE tenant_id=$1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		r.TenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list stock logs: %w", err)
	}
	defer rows.Close()
	return scanStockLogs(rows)
}

// ListByProduct returns every ledger entry for one product, oldest first, so
// the caller can replay them.
func (r *StockLogRepository) ListByProduct(ctx context.Context, productID int) ([]models.StockLog, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, product_id, product_name, qty_delta, movement_type, reference_id, note, created_at
		 FROM stock_logs WHERE tenant_id=$1 AND product_id=$2 ORDER BY id ASC`,
		r.TenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("list stock logs by product: %w", err)
	}
	defer rows.Close()
	return scanStockLogs(rows)
}

// LedgerTotals returns the signed delta sum per product across the ledger.
func (r *StockLogRepository) LedgerTotals(ctx context.Context) (map[int]int, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT product_id, COALESCE(SUM(qty_delta), 0)
		 FROM stock_logs WHERE tenant_id=$1 GROUP BY product_id`,
		r.TenantID)
	if err != nil {
		return nil, fmt.Errorf("ledger totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[int]int)
	for rows.Next() {
		var productID, total int
		if err := rows.Scan(&productID, &total); err != nil {
			return nil, err
		}
		totals[productID] = total
	}
	return totals, rows.Err()
}

func scanStockLogs(rows pgx.Rows) ([]models.StockLog, error) {
	logs := []models.StockLog{}
	for rows.Next() {
		var l models.StockLog
		var movementType string
		err := rows.Scan(&l.ID, &l.ProductID, &l.ProductName, &l.QtyDelta,
			&movementType, &l.ReferenceID, &l.Note, &l.CreatedAt)
		if err != nil {
			return nil, err
		}
		l.Type = models.MovementType(movementType)
		logs = append(logs, l)
	}
	return logs, rows.Err()
}
