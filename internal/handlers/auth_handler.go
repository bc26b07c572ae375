package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"smartbiz-backend/internal/auth"
	"smartbiz-backend/internal/config"
)

type AuthHandler struct {
	cfg        *config.Config
	jwtManager *auth.JWTManager
}

func NewAuthHandler(cfg *config.Config, jwtManager *auth.JWTManager) *AuthHandler {
	return &AuthHandler{cfg: cfg, jwtManager: jwtManager}
}

type sessionRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	Token    string `json:"token"`
	Mode     string `json:"mode"`
	TenantID string `json:"tenant_id"`
}

// CreateSession issues a session token. With no credential (or a credential
// that does not match the bootstrap one) the session falls back to anonymous
// instead of failing, so the app always opens.
func (h *AuthHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&req)
	}

	mode := auth.ModeAnonymous
	email := ""
	if req.Email != "" && h.cfg.Bootstrap.Email != "" {
		if req.Email == h.cfg.Bootstrap.Email &&
			auth.VerifyPassword(h.cfg.Bootstrap.PasswordHash, req.Password) {
			mode = auth.ModeOwner
			email = req.Email
		} else {
			log.Printf("[Auth] bootstrap credential mismatch, issuing anonymous session")
		}
	}

	token, err := h.jwtManager.GenerateSessionToken(mode, email)
	if err != nil {
		http.Error(w, "Failed to create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(sessionResponse{
		Token:    token,
		Mode:     mode,
		TenantID: h.cfg.Tenant.ID,
	})
}
