package jwtutil

import "testing"

func TestGenerateAndValidateToken(t *testing.T) {
	util := New(Config{SigningKey: "test-secret", ExpirationHours: 1})

	token, err := util.GenerateToken("user-1", "ana@ceom.app", "emprendedor")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := util.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "user-1" || claims.Email != "ana@ceom.app" || claims.Role != "emprendedor" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	issuer := New(Config{SigningKey: "secret-a", ExpirationHours: 1})
	verifier := New(Config{SigningKey: "secret-b", ExpirationHours: 1})

	token, err := issuer.GenerateToken("user-1", "ana@ceom.app", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(token); err == nil {
		t.Fatal("expected validation failure with a different signing key")
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	util := New(Config{SigningKey: "test-secret", ExpirationHours: -1})

	token, err := util.GenerateToken("user-1", "ana@ceom.app", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := util.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestGenerateWithoutKey(t *testing.T) {
	util := New(Config{})
	if _, err := util.GenerateToken("user-1", "ana@ceom.app", "admin"); err == nil {
		t.Fatal("expected error without signing key")
	}
}
