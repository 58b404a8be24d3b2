package jwt

import (
	"errors"
	"testing"
	"time"

	"careconnect-backend/config"
)

func newTestService(expiry time.Duration) *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: expiry,
	})
}

func TestGenerateAndValidate(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	token, err := svc.GenerateAccessToken(42, "jdoe", "student")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.Subject != "jdoe" {
		t.Errorf("subject = %q, want jdoe", claims.Subject)
	}
	if claims.UserID != 42 {
		t.Errorf("user_id = %d, want 42", claims.UserID)
	}
	if claims.Role != "student" {
		t.Errorf("role = %q, want student", claims.Role)
	}
	if claims.TokenID == "" {
		t.Error("token_id should not be empty")
	}
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateAccessToken(1, "jdoe", "student")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = svc.ValidateToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestValidateGarbageToken(t *testing.T) {
	svc := newTestService(24 * time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestValidateWrongSecret(t *testing.T) {
	svc := newTestService(24 * time.Hour)
	other := NewJWTService(config.JWTConfig{Secret: "other-secret", AccessExpiry: 24 * time.Hour})

	token, err := svc.GenerateAccessToken(1, "jdoe", "student")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	_, err = other.ValidateToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid for wrong secret, got %v", err)
	}
}
