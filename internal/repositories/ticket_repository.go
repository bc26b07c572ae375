package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewTicketRepository(db *pgxpool.Pool, tenantID string) *TicketRepository {
	return &TicketRepository{DB: db, TenantID: tenantID}
}

func (r *TicketRepository) Create(ctx context.Context, t *models.Ticket) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO tickets(tenant_id, ticket_id, subject, message, category, priority, status)
		 VALUES($1,$2,$3,$4,$5,$6,$7) RETURNING id, created_at`,
		r.TenantID, t.TicketID, t.Subject, t.Message, t.Category, t.Priority, t.Status,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	return nil
}

func (r *TicketRepository) List(ctx context.Context) ([]models.Ticket, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, ticket_id, subject, message, category, priority, status, created_at
		 FROM tickets WHERE tenant_id=$1 ORDER BY created_at DESC, id DESC`, r.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	tickets := []models.Ticket{}
	for rows.Next() {
		var t models.Ticket
		err := rows.Scan(&t.ID, &t.TicketID, &t.Subject, &t.Message, &t.Category,
			&t.Priority, &t.Status, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}
