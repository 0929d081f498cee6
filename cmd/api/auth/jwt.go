package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"

	accessTTL  = 24 * time.Hour
	refreshTTL = 7 * 24 * time.Hour
)

// TokenPair is what login and registration hand back to clients.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// JWTManager signs and verifies HS256 tokens with a single secret string.
type JWTManager struct {
	secret []byte
	issuer string
}

func NewJWTManager(secret, issuer string) (*JWTManager, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if issuer == "" {
		issuer = "summary-share"
	}
	return &JWTManager{secret: []byte(secret), issuer: issuer}, nil
}

// Sign issues an access/refresh token pair for a user. Refresh tokens carry
// a jti so replayed tokens can be traced.
func (m *JWTManager) Sign(userID uint) (*TokenPair, error) {
	now := time.Now()

	access, err := m.sign(jwt.MapClaims{
		"sub":        strconv.FormatUint(uint64(userID), 10),
		"iss":        m.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(accessTTL).Unix(),
		"token_type": TokenTypeAccess,
	})
	if err != nil {
		return nil, err
	}

	refresh, err := m.sign(jwt.MapClaims{
		"sub":        strconv.FormatUint(uint64(userID), 10),
		"iss":        m.issuer,
		"iat":        now.Unix(),
		"exp":        now.Add(refreshTTL).Unix(),
		"token_type": TokenTypeRefresh,
		"jti":        uuid.New().String(),
	})
	if err != nil {
		return nil, err
	}

	return &TokenPair{Access: access, Refresh: refresh}, nil
}

func (m *JWTManager) sign(claims jwt.MapClaims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse verifies a token of the expected type and returns the user id.
func (m *JWTManager) Parse(tokenString, expectedType string) (uint, error) {
	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	tokenType, _ := claims["token_type"].(string)
	if tokenType != expectedType {
		return 0, fmt.Errorf("unexpected token type %q", tokenType)
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return 0, fmt.Errorf("token missing sub claim")
	}
	id, err := strconv.ParseUint(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid sub claim: %w", err)
	}

	return uint(id), nil
}
