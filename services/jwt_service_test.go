package services

import (
	"strings"
	"testing"
)

func TestAdminJWTRoundTrip(t *testing.T) {
	if err := InitJWTService("test-secret-at-least-long-enough"); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateAdminJWT("0198f7a2-0000-7000-8000-000000000001", "admin@petrocino.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := VerifyAdminJWT(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.AdminID != "0198f7a2-0000-7000-8000-000000000001" {
		t.Errorf("admin id: got %q", claims.AdminID)
	}
	if claims.Email != "admin@petrocino.com" {
		t.Errorf("email: got %q", claims.Email)
	}
	if claims.Issuer != adminTokenIssuer {
		t.Errorf("issuer: got %q, want %q", claims.Issuer, adminTokenIssuer)
	}
}

func TestAdminJWTRejectsTamperedToken(t *testing.T) {
	if err := InitJWTService("test-secret-at-least-long-enough"); err != nil {
		t.Fatalf("init: %v", err)
	}

	token, err := GenerateAdminJWT("admin-id", "admin@petrocino.com")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	// Flip a character in the signature segment
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := VerifyAdminJWT(tampered); err == nil {
		t.Fatal("tampered token must not verify")
	}
}

func TestGenerateAdminJWTRequiresIdentity(t *testing.T) {
	if _, err := GenerateAdminJWT("", "admin@petrocino.com"); err == nil {
		t.Fatal("empty admin id must be rejected")
	}
	if _, err := GenerateAdminJWT("admin-id", ""); err == nil {
		t.Fatal("empty email must be rejected")
	}
}
