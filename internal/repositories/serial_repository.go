package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SerialRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewSerialRepository(db *pgxpool.Pool, tenantID string) *SerialRepository {
	return &SerialRepository{DB: db, TenantID: tenantID}
}

// Add inserts one serial. Deliberately independent of stock quantity.
func (r *SerialRepository) Add(ctx context.Context, s *models.SerialNumber) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO serial_numbers(tenant_id, product_id, serial, status)
		 VALUES($1,$2,$3,$4) RETURNING id, added_at`,
		r.TenantID, s.ProductID, s.Serial, s.Status,
	).Scan(&s.ID, &s.AddedAt)
	if err != nil {
		return fmt.Errorf("add serial: %w", err)
	}
	return nil
}

// ListByProduct returns the serials registered for one product.
func (r *SerialRepository) ListByProduct(ctx context.Context, productID int) ([]models.SerialNumber, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, product_id, serial, status, added_at FROM serial_numbers
		 WHERE tenant_id=$1 AND product_id=$2 ORDER BY id DESC`,
		r.TenantID, productID)
	if err != nil {
		return nil, fmt.Errorf("list serials: %w", err)
	}
	defer rows.Close()

	serials := []models.SerialNumber{}
	for rows.Next() {
		var s models.SerialNumber
		if err := rows.Scan(&s.ID, &s.ProductID, &s.Serial, &s.Status, &s.AddedAt); err != nil {
			return nil, err
		}
		serials = append(serials, s)
	}
	return serials, rows.Err()
}

// Delete removes one serial.
func (r *SerialRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM serial_numbers WHERE id=$1 AND tenant_id=$2`, id, r.TenantID)
	if err != nil {
		return fmt.Errorf("delete serial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("serial %d not found", id)
	}
	return nil
}
