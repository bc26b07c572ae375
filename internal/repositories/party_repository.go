package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PartyRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewPartyRepository(db *pgxpool.Pool, tenantID string) *PartyRepository {
	return &PartyRepository{DB: db, TenantID: tenantID}
}

// Balance is always derived from the party's transaction dues, never stored.
const partySelect = `
	SELECT p.id, p.name, p.type, p.phone, p.created_at,
	       COALESCE((SELECT SUM(t.due_amount) FROM transactions t
	                 WHERE t.tenant_id = p.tenant_id AND t.party_id = p.id), 0) AS balance
	FROM parties p`

func scanParty(row pgx.Row) (*models.Party, error) {
	var p models.Party
	var partyType string
	err := row.Scan(&p.ID, &p.Name, &partyType, &p.Phone, &p.CreatedAt, &p.Balance)
	if err != nil {
		return nil, err
	}
	p.Type = models.PartyType(partyType)
	return &p, nil
}

// Create inserts a new party.
func (r *PartyRepository) Create(ctx context.Context, p *models.Party) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO parties(tenant_id, name, type, phone) VALUES($1,$2,$3,$4)
		 RETURNING id, created_at`,
		r.TenantID, p.Name, string(p.Type), p.Phone,
	).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("create party: %w", err)
	}
	return nil
}

// Get retrieves one party with its derived balance.
func (r *PartyRepository) Get(ctx context.Context, id int) (*models.Party, error) {
	row := r.DB.QueryRow(ctx,
		partySelect+` WHERE p.id=$1 AND p.tenant_id=$2`, id, r.TenantID)
	p, err := scanParty(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get party: %w", err)
	}
	return p, nil
}

// List returns all parties, optionally filtered by type, with derived
// balances.
func (r *PartyRepository) List(ctx context.Context, partyType models.PartyType) ([]models.Party, error) {
	sql := partySelect + ` WHERE p.tenant_id=$1`
	args := []interface{}{r.TenantID}
	if partyType != "" {
		sql += ` AND p.type=$2`
		args = append(args, string(partyType))
	}
	sql += ` ORDER BY p.name ASC`

	rows, err := r.DB.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	parties := []models.Party{}
	for rows.Next() {
		p, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		parties = append(parties, *p)
	}
	return parties, rows.Err()
}
