package services

import (
	"context"
	"errors"
	"log"
	"strings"

	"smartbiz-backend/internal/live"
	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/repositories"
)

var (
	ErrInvalidCoupon  = errors.New("coupon code and discount are required")
	ErrEmptyBroadcast = errors.New("message is required")
)

// MarketingService owns coupons and the simulated bulk SMS broadcast.
type MarketingService struct {
	CouponRepo *repositories.CouponRepository
	SMSLogRepo *repositories.SMSLogRepository
	PartyRepo  *repositories.PartyRepository
	Hub        *live.Hub
}

func NewMarketingService(
	couponRepo *repositories.CouponRepository,
	smsLogRepo *repositories.SMSLogRepository,
	partyRepo *repositories.PartyRepository,
	hub *live.Hub,
) *MarketingService {
	return &MarketingService{
		CouponRepo: couponRepo,
		SMSLogRepo: smsLogRepo,
		PartyRepo:  partyRepo,
		Hub:        hub,
	}
}

func (s *MarketingService) CreateCoupon(ctx context.Context, req *models.CreateCouponRequest) (*models.Coupon, error) {
	if req.Code == "" || req.Discount <= 0 {
		return nil, ErrInvalidCoupon
	}
	coupon := &models.Coupon{
		Code:     strings.ToUpper(req.Code),
		Discount: req.Discount,
		Active:   true,
	}
	if err := s.CouponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	s.Hub.Publish(live.CollectionCoupons)
	return coupon, nil
}

func (s *MarketingService) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	return s.CouponRepo.List(ctx)
}

func (s *MarketingService) DeleteCoupon(ctx context.Context, id int) error {
	if err := s.CouponRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.Hub.Publish(live.CollectionCoupons)
	return nil
}

// Broadcast "sends" a promotional SMS to every customer. No gateway is
// attached: the blast is logged with its recipient count only.
func (s *MarketingService) Broadcast(ctx context.Context, message string) (*models.SMSBroadcast, error) {
	if message == "" {
		return nil, ErrEmptyBroadcast
	}

	customers, err := s.PartyRepo.List(ctx, models.PartyCustomer)
	if err != nil {
		return nil, err
	}

	broadcast := &models.SMSBroadcast{
		Message:    message,
		Recipients: len(customers),
	}
	if err := s.SMSLogRepo.Create(ctx, broadcast); err != nil {
		return nil, err
	}

	log.Printf("[Marketing] simulated SMS blast to %d customers", broadcast.Recipients)
	return broadcast, nil
}

// broadcastHistoryWindow caps the displayed blast history.
const broadcastHistoryWindow = 50

// ListBroadcasts returns past blasts, newest first.
func (s *MarketingService) ListBroadcasts(ctx context.Context) ([]models.SMSBroadcast, error) {
	return s.SMSLogRepo.List(ctx, broadcastHistoryWindow)
}
