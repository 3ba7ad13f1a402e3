package auth

import (
	"testing"

	"github.com/mattmosz/APP-TESO/app/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("tesorera2024")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "tesorera2024" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("tesorera2024", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("wrong password accepted")
	}
}

func TestJWTRoundTrip(t *testing.T) {
	user := &models.User{
		ID:          "3f0d8f0a-16a1-4f3e-9f2e-0b9d13d3a111",
		Username:    "tesorera",
		DisplayName: "María López",
		Role:        models.RoleAdmin,
	}

	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	claims, err := ValidateJWT(token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user_id = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Username != "tesorera" {
		t.Errorf("username = %q, want tesorera", claims.Username)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("role = %q, want admin", claims.Role)
	}
	if claims.ID == "" {
		t.Error("expected a token id")
	}
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	if _, err := ValidateJWT("not.a.token"); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestValidateJWTRejectsTamperedToken(t *testing.T) {
	user := &models.User{ID: "id", Username: "tesorera", Role: models.RoleAdmin}
	token, err := GenerateJWT(user)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	tampered := token[:len(token)-4] + "AAAA"
	if _, err := ValidateJWT(tampered); err == nil {
		t.Error("expected error for tampered signature")
	}
}
