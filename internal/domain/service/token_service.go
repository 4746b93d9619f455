package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims are the JWT claims issued for a session.
type Claims struct {
	UserID    uuid.UUID `json:"uid"`
	SessionID uuid.UUID `json:"sid"`
	Type      string    `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the tokens of a session.
type TokenService interface {
	GenerateTokens(userID, sessionID uuid.UUID) (accessToken string, refreshToken string, err error)

	// ValidateToken verifies signature, expiry and that the token is of tokenType.
	ValidateToken(tokenString, tokenType string) (*Claims, error)

	GetRefreshTokenDuration() time.Duration

	// HashToken returns the digest stored for a refresh token.
	HashToken(token string) string
}
