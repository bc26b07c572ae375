package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"smartbiz-backend/internal/models"
	"smartbiz-backend/internal/services"

	"github.com/gorilla/mux"
)

type stubPartyHistorian struct {
	history *models.PartyHistory
	err     error
}

func (s stubPartyHistorian) PartyHistory(ctx context.Context, partyID int) (*models.PartyHistory, error) {
	return s.history, s.err
}

func partyHistoryRequest(t *testing.T, h *PartyHandler, id string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/parties/"+id+"/history", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id})
	rec := httptest.NewRecorder()
	h.PartyHistory(rec, req)
	return rec
}

func TestPartyHistoryNotFound(t *testing.T) {
	h := &PartyHandler{Reports: stubPartyHistorian{err: services.ErrPartyNotFound}}

	rec := partyHistoryRequest(t, h, "42")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestPartyHistoryRepoError(t *testing.T) {
	h := &PartyHandler{Reports: stubPartyHistorian{err: errors.New("connection refused")}}

	rec := partyHistoryRequest(t, h, "42")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestPartyHistoryFound(t *testing.T) {
	h := &PartyHandler{Reports: stubPartyHistorian{history: &models.PartyHistory{
		Party:        &models.Party{ID: 7, Name: "Salma Begum", Type: models.PartyCustomer},
		TotalSpent:   800,
		TotalDue:     120,
		Transactions: []models.Transaction{},
	}}}

	rec := partyHistoryRequest(t, h, "7")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var history models.PartyHistory
	if err := json.Unmarshal(rec.Body.Bytes(), &history); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if history.Party == nil || history.Party.ID != 7 {
		t.Errorf("party = %+v, want id 7", history.Party)
	}
	if history.TotalSpent != 800 {
		t.Errorf("TotalSpent = %.2f, want 800", history.TotalSpent)
	}
}
