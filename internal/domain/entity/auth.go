package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuthProvider names a way of signing in.
type AuthProvider string

const (
	ProviderWallet AuthProvider = "wallet"
	ProviderEmail  AuthProvider = "email"
)

// Authentication is one credential linked to a user.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       AuthProvider
	ProviderUserID string // Wallet address or email.
	PasswordHash   string // Only set for the email provider.
	CreatedAt      time.Time
}

// RefreshToken is a persisted sign-in session.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string // SHA-256 of the raw token.
	ExpiresAt time.Time
	CreatedAt time.Time
}

// SessionInfo is the view of a session returned to its owner.
type SessionInfo struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
	Current   bool      `json:"current"`
}
