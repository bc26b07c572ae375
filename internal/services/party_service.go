package services

import (
	"context"
	"errors"

	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
)

var ErrInvalidParty = errors.New("party name and type are required")

type PartyService struct {
	PartyRepo *repositories.PartyRepository
	Hub       *live.Hub
}

func NewPartyService(partyRepo *repositories.PartyRepository, hub *live.Hub) *PartyService {
	return &PartyService{PartyRepo: partyRepo, Hub: hub}
}

func (s *PartyService) Create(ctx context.Context, req *models.CreatePartyRequest) (*models.Party, error) {
	if req.Name == "" {
		return nil, ErrInvalidParty
	}
	if req.Type != models.PartyCustomer && req.Type != models.PartySupplier {
		return nil, ErrInvalidParty
	}

	party := &models.Party{
		Name:  req.Name,
		Type:  req.Type,
		Phone: req.Phone,
	}
	if err := s.PartyRepo.Create(ctx, party); err != nil {
		return nil, err
	}
	s.Hub.Publish(live.CollectionParties)
	return party, nil
}

// List returns parties with derived balances, optionally filtered by type.
func (s *PartyService) List(ctx context.Context, partyType models.PartyType) ([]models.Party, error) {
	return s.PartyRepo.List(ctx, partyType)
}
