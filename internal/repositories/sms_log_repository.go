package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SMSLogRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewSMSLogRepository(db *pgxpool.Pool, tenantID string) *SMSLogRepository {
	return &SMSLogRepository{DB: db, TenantID: tenantID}
}

func (r *SMSLogRepository) Create(ctx context.Context, b *models.SMSBroadcast) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO sms_logs(tenant_id, message, recipients) VALUES($1,$2,$3)
		 RETURNING id, created_at`,
		r.TenantID, b.Message, b.Recipients,
	).Scan(&b.ID, &b.CreatedAt)
	if err != nil {
		return fmt.Errorf("log sms broadcast: %w", err)
	}
	return nil
}

func (r *SMSLogRepository) List(ctx context.Context, limit int) ([]models.SMSBroadcast, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, message, recipients, created_at FROM sms_logs
		 WHERE tenant_id=$1 ORDER BY id DESC LIMIT $2`, r.TenantID, limit)
	if err != nil {
		return nil, fmt.Errorf("list sms broadcasts: %w", err)
	}
	defer rows.Close()

	broadcasts := []models.SMSBroadcast{}
	for rows.Next() {
		var b models.SMSBroadcast
		if err := rows.Scan(&b.ID, &b.Message, &b.Recipients, &b.CreatedAt); err != nil {
			return nil, err
		}
		broadcasts = append(broadcasts, b)
	}
	return broadcasts, rows.Err()
}
