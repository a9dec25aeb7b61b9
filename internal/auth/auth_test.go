package auth

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	service := NewAuthService("test-secret")

	token, err := service.GenerateToken("player-1", "Guest")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken returned empty token")
	}

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.PlayerID != "player-1" {
		t.Errorf("PlayerID = %q, want %q", claims.PlayerID, "player-1")
	}
	if claims.DisplayName != "Guest" {
		t.Errorf("DisplayName = %q, want %q", claims.DisplayName, "Guest")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := NewAuthService("test-secret")

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "not a jwt", token: "not-a-token"},
		{name: "wrong secret", token: mustToken(t, NewAuthService("other-secret"))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := service.ValidateToken(tt.token); !errors.Is(err, ErrInvalidToken) {
				t.Errorf("ValidateToken(%q) error = %v, want ErrInvalidToken", tt.name, err)
			}
		})
	}
}

func TestExpiredToken(t *testing.T) {
	service := NewAuthService("test-secret")
	service.tokenDuration = -time.Hour

	token, err := service.GenerateToken("player-1", "Guest")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	if _, err := service.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("ValidateToken error = %v, want ErrTokenExpired", err)
	}
}

func TestRefreshToken(t *testing.T) {
	service := NewAuthService("test-secret")
	token := mustToken(t, service)

	claims, err := service.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	refreshed, err := service.RefreshToken(claims)
	if err != nil {
		t.Fatalf("RefreshToken failed: %v", err)
	}
	if _, err := service.ValidateToken(refreshed); err != nil {
		t.Errorf("refreshed token invalid: %v", err)
	}
}

func mustToken(t *testing.T, s *AuthService) string {
	t.Helper()
	token, err := s.GenerateToken("player-1", "Guest")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}
	return token
}
