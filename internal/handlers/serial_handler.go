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

type SerialHandler struct {
	Service *services.SerialService
}

func NewSerialHandler(s *services.SerialService) *SerialHandler {
	return &SerialHandler{Service: s}
}

func (h *SerialHandler) AddSerial(w http.ResponseWriter, r *http.Request) {
	var req models.AddSerialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	serial, err := h.Service.Add(context.Background(), &req)
	if err != nil {
		if err == services.ErrInvalidSerial {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(serial)
}

func (h *SerialHandler) ListSerials(w http.ResponseWriter, r *http.Request) {
	productID, _ := strconv.Atoi(r.URL.Query().Get("product_id"))
	if productID == 0 {
		http.Error(w, "product_id parameter is required", http.StatusBadRequest)
		return
	}

	serials, err := h.Service.ListByProduct(context.Background(), productID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(serials)
}

func (h *SerialHandler) DeleteSerial(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["id"]
	id, _ := strconv.Atoi(idStr)

	if err := h.Service.Delete(context.Background(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
