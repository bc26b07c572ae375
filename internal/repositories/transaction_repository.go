package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TransactionRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewTransactionRepository(db *pgxpool.Pool, tenantID string) *TransactionRepository {
	return &TransactionRepository{DB: db, TenantID: tenantID}
}

const transactionColumns = `id, type, sale_type, party_id, party_name, party_phone, party_address,
	items, total_qty, subtotal, additional_expense, vat, discount, amount,
	paid_amount, due_amount, change_amount, payment_method, service_staff,
	remarks, category, note, delivery_status, delivery_method, courier_name,
	tracking_id, created_at`

// InsertOp returns a batch op inserting one transaction record. Records are
// immutable; there is no corresponding update.
func (r *TransactionRepository) InsertOp(t *models.Transaction) store.Op {
	return func(ctx context.Context, tx pgx.Tx) error {
		items, err := json.Marshal(t.Items)
		if err != nil {
			return fmt.Errorf("marshal items: %w", err)
		}
		_, err = tx.Exec(ctx,
			`INSERT INTO transactions(id, tenant_id, type, sale_type, party_id, party_name,
			        party_phone, party_address, items, total_qty, subtotal, additional_expense,
			        vat, discount, amount, paid_amount, due_amount, change_amount,
			        payment_method, service_staff, remarks, category, note,
			        delivery_status, delivery_method, courier_name, tracking_id, created_at)
			 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,
			        $19,$20,$21,$22,$23,$24,$25,$26,$27,$28)`,
			t.ID, r.TenantID, string(t.Type), t.SaleType, t.PartyID, t.PartyName,
			t.PartyPhone, t.PartyAddress, items, t.TotalQty, t.Subtotal, t.AdditionalExpense,
			t.VAT, t.Discount, t.Amount, t.PaidAmount, t.DueAmount, t.ChangeAmount,
			t.PaymentMethod, t.ServiceStaff, t.Remarks, t.Category, t.Note,
			t.DeliveryStatus, t.DeliveryMethod, t.CourierName, t.TrackingID, t.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert transaction: %w", err)
		}
		return nil
	}
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var t models.Transaction
	var txnType string
	var items []byte
	err := row.Scan(&t.ID, &txnType, &t.SaleType, &t.PartyID, &t.PartyName, &t.PartyPhone,
		&t.PartyAddress, &items, &t.TotalQty, &t.Subtotal, &t.AdditionalExpense,
		&t.VAT, &t.Discount, &t.Amount, &t.PaidAmount, &t.DueAmount, &t.ChangeAmount,
		&t.PaymentMethod, &t.ServiceStaff, &t.Remarks, &t.Category, &t.Note,
		&t.DeliveryStatus, &t.DeliveryMethod, &t.CourierName, &t.TrackingID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = models.TransactionType(txnType)
	if len(items) > 0 {
		// A malformed items document decodes to an empty cart, never an error.
		if err := json.Unmarshal(items, &t.Items); err != nil {
			t.Items = nil
		}
	}
	return &t, nil
}

func (r *TransactionRepository) queryMany(ctx context.Context, sql string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	txns := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		txns = append(txns, *t)
	}
	return txns, rows.Err()
}

// Get retrieves one transaction by id.
func (r *TransactionRepository) Get(ctx context.Context, id string) (*models.Transaction, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE id=$1 AND tenant_id=$2`,
		id, r.TenantID)
	t, err := scanTransaction(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

// List returns the whole transaction snapshot, newest first. The aggregate
// folds run over this.
func (r *TransactionRepository) List(ctx context.Context) ([]models.Transaction, error) {
	return r.queryMany(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE tenant_id=$1
		 ORDER BY created_at DESC, id DESC`, r.TenantID)
}

// ListByType returns transactions of one type, newest first, capped at limit
// (0 means no cap).
func (r *TransactionRepository) ListByType(ctx context.Context, txnType models.TransactionType, limit int) ([]models.Transaction, error) {
	sql := `SELECT ` + transactionColumns + ` FROM transactions
	        WHERE tenant_id=$1 AND type=$2 ORDER BY created_at DESC, id DESC`
	if limit > 0 {
		return r.queryMany(ctx, sql+` LIMIT $3`, r.TenantID, string(txnType), limit)
	}
	return r.queryMany(ctx, sql, r.TenantID, string(txnType))
}

// ListByParty returns a party's recent transactions, newest first.
func (r *TransactionRepository) ListByParty(ctx context.Context, partyID, limit int) ([]models.Transaction, error) {
	return r.queryMany(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE tenant_id=$1 AND party_id=$2 ORDER BY created_at DESC, id DESC LIMIT $3`,
		r.TenantID, partyID, limit)
}

// ListCourier returns transactions shipped by courier, newest first.
func (r *TransactionRepository) ListCourier(ctx context.Context) ([]models.Transaction, error) {
	return r.queryMany(ctx,
		`SELECT `+transactionColumns+` FROM transactions
		 WHERE tenant_id=$1 AND delivery_method='Courier' ORDER BY created_at DESC, id DESC`,
		r.TenantID)
}
