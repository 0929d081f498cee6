package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewJWTManagerRequiresSecret(t *testing.T) {
	manager, err := NewJWTManager("", "issuer-for-test")
	if err == nil {
		t.Fatalf("expected error when secret is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when secret is empty")
	}
}

func TestNewJWTManagerUsesDefaultIssuer(t *testing.T) {
	manager, err := NewJWTManager("test-secret", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if manager.issuer != "summary-share" {
		t.Fatalf("expected default issuer summary-share, got %q", manager.issuer)
	}
}

func TestJWTManagerSignAndParseRoundTrip(t *testing.T) {
	manager, err := NewJWTManager("test-secret", "test-issuer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pair, err := manager.Sign(42)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	userID, err := manager.Parse(pair.Access, TokenTypeAccess)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}

	userID, err = manager.Parse(pair.Refresh, TokenTypeRefresh)
	if err != nil {
		t.Fatalf("unexpected refresh parse error: %v", err)
	}
	if userID != 42 {
		t.Fatalf("expected user id 42, got %d", userID)
	}
}

func TestJWTManagerParseRejectsWrongTokenType(t *testing.T) {
	manager, err := NewJWTManager("test-secret", "test-issuer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pair, err := manager.Sign(7)
	if err != nil {
		t.Fatalf("unexpected sign error: %v", err)
	}

	if _, err := manager.Parse(pair.Refresh, TokenTypeAccess); err == nil {
		t.Fatalf("expected error when a refresh token is used as access token")
	}
	if _, err := manager.Parse(pair.Access, TokenTypeRefresh); err == nil {
		t.Fatalf("expected error when an access token is used as refresh token")
	}
}

func TestJWTManagerParseRejectsInvalidSignature(t *testing.T) {
	manager := &JWTManager{secret: []byte("service-secret"), issuer: "issuer"}

	forgedClaims := jwt.MapClaims{
		"sub":        "7",
		"iss":        "issuer",
		"exp":        time.Now().Add(time.Hour).Unix(),
		"token_type": TokenTypeAccess,
	}
	forgedToken := jwt.NewWithClaims(jwt.SigningMethodHS256, forgedClaims)
	tokenString, err := forgedToken.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	if _, err := manager.Parse(tokenString, TokenTypeAccess); err == nil {
		t.Fatalf("expected parse error for invalid signature")
	}
}

func TestJWTManagerParseRejectsMissingSubClaim(t *testing.T) {
	manager := &JWTManager{secret: []byte("service-secret"), issuer: "issuer"}

	claims := jwt.MapClaims{
		"iss":        "issuer",
		"exp":        time.Now().Add(time.Hour).Unix(),
		"token_type": TokenTypeAccess,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(manager.secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	_, err = manager.Parse(tokenString, TokenTypeAccess)
	if err == nil {
		t.Fatalf("expected parse error for missing sub claim")
	}
	if !strings.Contains(err.Error(), "token missing sub claim") {
		t.Fatalf("expected missing sub error, got %v", err)
	}
}
