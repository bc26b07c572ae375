package services

import (
	"context"
	"errors"
	"fmt"

	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
	"smartbiz-backend/internal/timeutil"
)

var ErrProductName = errors.New("product name is required")

// ProductService owns the catalog: create and update with normalization of
// missing fields, and the valuation summary.
type ProductService struct {
	ProductRepo *repositories.ProductRepository
	Hub         *live.Hub
}

func NewProductService(productRepo *repositories.ProductRepository, hub *live.Hub) *ProductService {
	return &ProductService{ProductRepo: productRepo, Hub: hub}
}

// normalize fills the defaults the catalog guarantees: unit falls back to a
// piece count, category to General, SKU to a timestamp-derived placeholder.
// Numeric zero values pass through as zero.
func normalize(req *models.SaveProductRequest) models.Product {
	p := models.Product{
		Name:            req.Name,
		SKU:             req.SKU,
		Category:        req.Category,
		Brand:           req.Brand,
		Units:           req.Units,
		Size:            req.Size,
		Variations:      req.Variations,
		Color:           req.Color,
		Warranty:        req.Warranty,
		MfgDate:         req.MfgDate,
		ExpDate:         req.ExpDate,
		Cost:            req.Cost,
		WholesalePrice:  req.WholesalePrice,
		Price:           req.Price,
		VAT:             req.VAT,
		IsVATApplicable: req.IsVATApplicable,
		Stock:           req.Stock,
		AlertQty:        req.AlertQty,
	}
	if p.SKU == "" {
		p.SKU = fmt.Sprintf("SKU-%d", timeutil.Now().UnixMilli())
	}
	if p.Category == "" {
		p.Category = "General"
	}
	if p.Units == "" {
		p.Units = "Pcs"
	}
	return p
}

// Create adds a product to the catalog.
func (s *ProductService) Create(ctx context.Context, req *models.SaveProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, ErrProductName
	}
	p := normalize(req)
	if err := s.ProductRepo.Create(ctx, &p); err != nil {
		return nil, err
	}
	p.LowStock = p.IsLowStock()
	s.Hub.Publish(live.CollectionProducts)
	return &p, nil
}

// Update overwrites an existing product with the full attribute set. No
// version check: last write wins.
func (s *ProductService) Update(ctx context.Context, id int, req *models.SaveProductRequest) (*models.Product, error) {
	if req.Name == "" {
		return nil, ErrProductName
	}
	p := normalize(req)
	p.ID = id
	if err := s.ProductRepo.Update(ctx, &p); err != nil {
		return nil, err
	}
	p.LowStock = p.IsLowStock()
	s.Hub.Publish(live.CollectionProducts)
	return &p, nil
}

// List returns the full catalog.
func (s *ProductService) List(ctx context.Context) ([]models.Product, error) {
	return s.ProductRepo.List(ctx)
}

// ComputeValuation folds the catalog into totals at cost and at price. Pure
// and idempotent; missing numerics were already zeroed at the boundary.
func ComputeValuation(products []models.Product) models.StockValuation {
	var v models.StockValuation
	for _, p := range products {
		v.TotalItems += p.Stock
		v.ValueAtCost += p.Cost * float64(p.Stock)
		v.ValueAtPrice += p.Price * float64(p.Stock)
	}
	v.EstimatedProfit = v.ValueAtPrice - v.ValueAtCost
	return v
}

// Valuation summarizes current inventory value.
func (s *ProductService) Valuation(ctx context.Context) (*models.StockValuation, error) {
	products, err := s.ProductRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	v := ComputeValuation(products)
	return &v, nil
}
