package auth

import (
	"testing"

	"smartbiz-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpirationHours = 1
	cfg.JWT.Issuer = "smartbiz-backend"
	return cfg
}

func TestSessionTokenRoundTrip(t *testing.T) {
	m := NewJWTManager(testConfig())

	token, err := m.GenerateSessionToken(ModeOwner, "owner@shop.test")
	if err != nil {
		t.Fatalf("GenerateSessionToken: %v", err)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.Mode != ModeOwner {
		t.Errorf("Mode = %q, want %q", claims.Mode, ModeOwner)
	}
	if claims.Email != "owner@shop.test" {
		t.Errorf("Email = %q", claims.Email)
	}
	if claims.SessionID == "" {
		t.Error("SessionID is empty")
	}
}

func TestAnonymousSessionsGetDistinctIDs(t *testing.T) {
	m := NewJWTManager(testConfig())

	t1, err := m.GenerateSessionToken(ModeAnonymous, "")
	if err != nil {
		t.Fatal(err)
	}
	t2, err := m.GenerateSessionToken(ModeAnonymous, "")
	if err != nil {
		t.Fatal(err)
	}

	c1, _ := m.ValidateToken(t1)
	c2, _ := m.ValidateToken(t2)
	if c1.SessionID == c2.SessionID {
		t.Error("two anonymous sessions share a session id")
	}
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	m := NewJWTManager(testConfig())
	token, err := m.GenerateSessionToken(ModeAnonymous, "")
	if err != nil {
		t.Fatal(err)
	}

	other := testConfig()
	other.JWT.Secret = "different-secret"
	if _, err := NewJWTManager(other).ValidateToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	m := NewJWTManager(testConfig())
	if _, err := m.ValidateToken("not-a-token"); err == nil {
		t.Error("garbage token validated")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if !VerifyPassword(hash, "s3cret") {
		t.Error("correct password rejected")
	}
	if VerifyPassword(hash, "wrong") {
		t.Error("wrong password accepted")
	}
}
