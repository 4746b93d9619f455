// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a person who can befriend others and share subscriptions.
// A user is identified either by a wallet address or by an email.
type User struct {
	ID            uuid.UUID `json:"id"`                       // Immutable identifier.
	WalletAddress *string   `json:"walletAddress,omitempty"`  // Lower-cased 0x address, unique when set.
	Email         *string   `json:"email,omitempty"`          // Lower-cased email, unique when set.
	Username      string    `json:"username"`                 // Display name shown to friends.
	AvatarURL     *string   `json:"avatarUrl,omitempty"`      // Optional profile picture.
	CreatedAt     time.Time `json:"createdAt"`                // Timestamp of account creation.
	UpdatedAt     time.Time `json:"updatedAt"`                // Timestamp of the last profile change.
}

// WalletOrEmpty returns the wallet address or an empty string.
func (u *User) WalletOrEmpty() string {
	if u == nil || u.WalletAddress == nil {
		return ""
	}

	return *u.WalletAddress
}

// IdentifierKind tells which identity key an identifier refers to.
type IdentifierKind int

const (
	IdentifierUnknown IdentifierKind = iota
	IdentifierWallet
	IdentifierEmail
)

// ParseIdentifier normalises a wallet address or email typed by a user.
func ParseIdentifier(raw string) (string, IdentifierKind) {
	value := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case value == "":
		return "", IdentifierUnknown
	case strings.HasPrefix(value, "0x") && len(value) > 2:
		return value, IdentifierWallet
	case strings.Contains(value, "@"):
		return value, IdentifierEmail
	default:
		return value, IdentifierUnknown
	}
}
