package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
)

var ErrInvalidTicket = errors.New("subject and message are required")

type TicketService struct {
	TicketRepo *repositories.TicketRepository
	Hub        *live.Hub
}

func NewTicketService(ticketRepo *repositories.TicketRepository, hub *live.Hub) *TicketService {
	return &TicketService{TicketRepo: ticketRepo, Hub: hub}
}

func (s *TicketService) Create(ctx context.Context, req *models.CreateTicketRequest) (*models.Ticket, error) {
	if req.Subject == "" || req.Message == "" {
		return nil, ErrInvalidTicket
	}

	category := req.Category
	if category == "" {
		category = "General"
	}
	priority := req.Priority
	if priority == "" {
		priority = "Normal"
	}

	ticket := &models.Ticket{
		TicketID: fmt.Sprintf("TKT-%05d", rand.Intn(100000)),
		Subject:  req.Subject,
		Message:  req.Message,
		Category: category,
		Priority: priority,
		Status:   "Open",
	}
	if err := s.TicketRepo.Create(ctx, ticket); err != nil {
		return nil, err
	}
	s.Hub.Publish(live.CollectionTickets)
	return ticket, nil
}

func (s *TicketService) List(ctx context.Context) ([]models.Ticket, error) {
	return s.TicketRepo.List(ctx)
}
