package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"smartbiz-backend/internal/auth"
	"smartbiz-backend/internal/config"
)

func sessionTestConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "smartbiz-backend"
	cfg.Tenant.ID = "default-app-id"

	hash, err := auth.HashPassword("owner-pass")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Bootstrap.Email = "owner@shop.test"
	cfg.Bootstrap.PasswordHash = hash
	return cfg
}

func createSession(t *testing.T, h *AuthHandler, body string) sessionResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/session", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.CreateSession(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp sessionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp
}

func TestCreateSessionAnonymous(t *testing.T) {
	cfg := sessionTestConfig(t)
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	resp := createSession(t, h, `{}`)
	if resp.Mode != auth.ModeAnonymous {
		t.Errorf("Mode = %q, want anonymous", resp.Mode)
	}
	if resp.Token == "" {
		t.Error("empty token")
	}
	if resp.TenantID != "default-app-id" {
		t.Errorf("TenantID = %q", resp.TenantID)
	}
}

func TestCreateSessionOwner(t *testing.T) {
	cfg := sessionTestConfig(t)
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	resp := createSession(t, h, `{"email":"owner@shop.test","password":"owner-pass"}`)
	if resp.Mode != auth.ModeOwner {
		t.Errorf("Mode = %q, want owner", resp.Mode)
	}
}

func TestCreateSessionBadCredentialFallsBackToAnonymous(t *testing.T) {
	cfg := sessionTestConfig(t)
	h := NewAuthHandler(cfg, auth.NewJWTManager(cfg))

	resp := createSession(t, h, `{"email":"owner@shop.test","password":"wrong"}`)
	if resp.Mode != auth.ModeAnonymous {
		t.Errorf("Mode = %q, want anonymous fallback", resp.Mode)
	}
	if resp.Token == "" {
		t.Error("fallback session has no token")
	}
}
