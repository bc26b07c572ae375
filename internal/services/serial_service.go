package services

import (
	"context"
	"errors"

	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
)

var ErrInvalidSerial = errors.New("product and serial are required")

// SerialService manages per-product serial numbers. Serials and stock
// quantity are tracked independently: neither add nor delete touches the
// product's stock count.
type SerialService struct {
	SerialRepo  *repositories.SerialRepository
	ProductRepo *repositories.ProductRepository
	Hub         *live.Hub
}

func NewSerialService(serialRepo *repositories.SerialRepository, productRepo *repositories.ProductRepository, hub *live.Hub) *SerialService {
	return &SerialService{SerialRepo: serialRepo, ProductRepo: productRepo, Hub: hub}
}

func (s *SerialService) Add(ctx context.Context, req *models.AddSerialRequest) (*models.SerialNumber, error) {
	if req.ProductID == 0 || req.Serial == "" {
		return nil, ErrInvalidSerial
	}
	product, err := s.ProductRepo.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, errors.New("product not found")
	}

	serial := &models.SerialNumber{
		ProductID: req.ProductID,
		Serial:    req.Serial,
		Status:    "available",
	}
	if err := s.SerialRepo.Add(ctx, serial); err != nil {
		return nil, err
	}
	s.Hub.Publish(live.CollectionSerials)
	return serial, nil
}

func (s *SerialService) ListByProduct(ctx context.Context, productID int) ([]models.SerialNumber, error) {
	return s.SerialRepo.ListByProduct(ctx, productID)
}

func (s *SerialService) Delete(ctx context.Context, id int) error {
	if err := s.SerialRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Hub.Publish(live.CollectionSerials)
	return nil
}
