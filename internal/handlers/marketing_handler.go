package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/services"

	"github.com/gorilla/mux"
)

type MarketingHandler struct {
	Service *services.MarketingService
}

func NewMarketingHandler(s *services.MarketingService) *MarketingHandler {
	return &MarketingHandler{Service: s}
}

func (h *MarketingHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCouponRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	coupon, err := h.Service.CreateCoupon(context.Background(), &req)
	if err != nil {
		if err == services.ErrInvalidCoupon {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(coupon)
}

func (h *MarketingHandler) ListCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.Service.ListCoupons(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(coupons)
}

func (h *MarketingHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.DeleteCoupon(context.Background(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MarketingHandler) BroadcastSMS(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	broadcast, err := h.Service.Broadcast(context.Background(), req.Message)
	if err != nil {
		if err == services.ErrEmptyBroadcast {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(broadcast)
}

func (h *MarketingHandler) ListBroadcasts(w http.ResponseWriter, r *http.Request) {
	broadcasts, err := h.Service.ListBroadcasts(context.Background())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(broadcasts)
}
