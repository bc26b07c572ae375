package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CouponRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewCouponRepository(db *pgxpool.Pool, tenantID string) *CouponRepository {
	return &CouponRepository{DB: db, TenantID: tenantID}
}

func (r *CouponRepository) Create(ctx context.Context, c *models.Coupon) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO coupons(tenant_id, code, discount, active) VALUES($1,$2,$3,$4)
		 RETURNING id, created_at`,
		r.TenantID, c.Code, c.Discount, c.Active,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create coupon: %w", err)
	}
	return nil
}

func (r *CouponRepository) List(ctx context.Context) ([]models.Coupon, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, code, discount, active, created_at FROM coupons
		 WHERE tenant_id=$1 ORDER BY id DESC`, r.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list coupons: %w", err)
	}
	defer rows.Close()

	coupons := []models.Coupon{}
	for rows.Next() {
		var c models.Coupon
		if err := rows.Scan(&c.ID, &c.Code, &c.Discount, &c.Active, &c.CreatedAt); err != nil {
			return nil, err
		}
		coupons = append(coupons, c)
	}
	return coupons, rows.Err()
}

func (r *CouponRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx,
		`DELETE FROM coupons WHERE id=$1 AND tenant_id=$2`, id, r.TenantID)
	if err != nil {
		return fmt.Errorf("delete coupon: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("coupon %d not found", id)
	}
	return nil
}
