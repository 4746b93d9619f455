package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrNoIdentity means the context was never bound to a session.
	ErrNoIdentity = errors.New("no identity bound to context")
	// ErrIdentityRevoked means the session ended while the work was in flight.
	ErrIdentityRevoked = errors.New("identity revoked")
)

// Reasons a session ends.
const (
	RevokeReasonLogout  = "logout"
	RevokeReasonRevoked = "revoked"
	RevokeReasonExpired = "expired"
)

// IdentityChange is emitted when a session ends.
type IdentityChange struct {
	SessionID uuid.UUID
	UserID    uuid.UUID
	Reason    string
}

// IdentityProvider supplies the authenticated user of a request.
type IdentityProvider interface {
	CurrentUserID(ctx context.Context) (uuid.UUID, error)
	OnIdentityChange(fn func(IdentityChange)) Registration
}

// SessionRegistry tracks live sessions and cancels the work bound to a
// session when it is revoked.
type SessionRegistry interface {
	IdentityProvider

	// Bind derives a context tied to the session. The returned func releases
	// the binding and must be called when the request ends.
	Bind(ctx context.Context, sessionID, userID uuid.UUID) (context.Context, func())
	Revoke(sessionID uuid.UUID, reason string)
	RevokeUser(userID uuid.UUID, reason string)
}
