package repositories

import (
	"context"
	"fmt"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProductRepository struct {
	DB       *pgxpool.Pool
	TenantID string
}

func NewProductRepository(db *pgxpool.Pool, tenantID string) *ProductRepository {
	return &ProductRepository{DB: db, TenantID: tenantID}
}

const productColumns = `id, name, sku, category, brand, units, size, variations, color, warranty,
	mfg_date, exp_date, cost, wholesale_price, price, vat, is_vat_applicable,
	stock, alert_qty, created_at, updated_at`

func scanProduct(row pgx.Row) (*models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Brand, &p.Units, &p.Size,
		&p.Variations, &p.Color, &p.Warranty, &p.MfgDate, &p.ExpDate,
		&p.Cost, &p.WholesalePrice, &p.Price, &p.VAT, &p.IsVATApplicable,
		&p.Stock, &p.AlertQty, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.LowStock = p.IsLowStock()
	return &p, nil
}

// Create inserts a new product with the full attribute set.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO products(tenant_id, name, sku, category, brand, units, size, variations,
		        color, warranty, mfg_date, exp_date, cost, wholesale_price, price, vat,
		        is_vat_applicable, stock, alert_qty)
		 VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		 RETURNING id, created_at, updated_at`,
		r.TenantID, p.Name, p.SKU, p.Category, p.Brand, p.Units, p.Size, p.Variations,
		p.Color, p.Warranty, p.MfgDate, p.ExpDate, p.Cost, p.WholesalePrice, p.Price,
		p.VAT, p.IsVATApplicable, p.Stock, p.AlertQty,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create product: %w", err)
	}
	return nil
}

// Update overwrites every attribute of an existing product. Last write wins:
// there is no version check, two concurrent editors overwrite each other.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE products SET name=$1, sku=$2, category=$3, brand=$4, units=$5, size=$6,
		        variations=$7, color=$8, warranty=$9, mfg_date=$10, exp_date=$11,
		        cost=$12, wholesale_price=$13, price=$14, vat=$15, is_vat_applicable=$16,
		        stock=$17, alert_qty=$18, updated_at=NOW()
		 WHERE id=$19 AND tenant_id=$20`,
		p.Name, p.SKU, p.Category, p.Brand, p.Units, p.Size, p.Variations, p.Color,
		p.Warranty, p.MfgDate, p.ExpDate, p.Cost, p.WholesalePrice, p.Price, p.VAT,
		p.IsVATApplicable, p.Stock, p.AlertQty, p.ID, r.TenantID)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("product %d not found", p.ID)
	}
	return nil
}

// Get retrieves one product by id.
func (r *ProductRepository) Get(ctx context.Context, id int) (*models.Product, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id=$1 AND tenant_id=$2`,
		id, r.TenantID)
	p, err := scanProduct(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return p, nil
}

// List returns the full current product set, newest first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT `+productColumns+` FROM products WHERE tenant_id=$1 ORDER BY id DESC`,
		r.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

// AdjustStockOp returns a batch op that shifts stock by a relative delta.
// The increment is applied in SQL, not read-modify-write, so concurrent
// committers compose commutatively. Nothing stops stock going negative.
func (r *ProductRepository) AdjustStockOp(productID, delta int) store.Op {
	return func(ctx context.Context, tx pgx.Tx) error {
		tag, err := tx.Exec(ctx,
			`UPDATE products SET stock = stock + $1, updated_at = NOW()
			 WHERE id=$2 AND tenant_id=$3`,
			delta, productID, r.TenantID)
		if err != nil {
			return fmt.Errorf("adjust stock: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("product %d not found", productID)
		}
		return nil
	}
}

// SetCostOp returns a batch op that overwrites the recorded unit cost.
// Purchases overwrite, they do not average.
func (r *ProductRepository) SetCostOp(productID int, cost float64) store.Op {
	return func(ctx context.Context, tx pgx.Tx) error {
		_, err := tx.Exec(ctx,
			`UPDATE products SET cost=$1, updated_at=NOW() WHERE id=$2 AND tenant_id=$3`,
			cost, productID, r.TenantID)
		if err != nil {
			return fmt.Errorf("set cost: %w", err)
		}
		return nil
	}
}
