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

// partyHistorian is the slice of ReportService the history endpoint needs.
type partyHistorian interface {
	PartyHistory(ctx context.Context, partyID int) (*models.PartyHistory, error)
}

type PartyHandler struct {
	Service *services.PartyService
	Reports partyHistorian
}

func NewPartyHandler(s *services.PartyService, reports *services.ReportService) *PartyHandler {
	return &PartyHandler{Service: s, Reports: reports}
}

func (h *PartyHandler) CreateParty(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePartyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	party, err := h.Service.Create(context.Background(), &req)
	if err != nil {
		if err == services.ErrInvalidParty {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(party)
}

// ListParties returns all parties, optionally filtered with ?type=customer
// or ?type=supplier.
func (h *PartyHandler) ListParties(w http.ResponseWriter, r *http.Request) {
	partyType := models.PartyType(r.URL.Query().Get("type"))

	parties, err := h.Service.List(context.Background(), partyType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parties)
}

func (h *PartyHandler) PartyHistory(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	history, err := h.Reports.PartyHistory(context.Background(), id)
	if err != nil {
		if err == services.ErrPartyNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(history)
}
