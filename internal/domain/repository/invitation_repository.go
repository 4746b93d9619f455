package repository

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrInvitationNotFound = errors.New("invitation not found")
	// ErrInvitationExists is returned when a pending invitation already exists for the invitee.
	ErrInvitationExists = errors.New("pending invitation already exists")
)

type InvitationRepository interface {
	Create(ctx context.Context, invitation *entity.Invitation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Invitation, error)
	FindPending(ctx context.Context, subscriptionID, inviteeID uuid.UUID) (*entity.Invitation, error)
	FindPendingByInvitee(ctx context.Context, inviteeID uuid.UUID) ([]*entity.Invitation, error)
	// UpdateStatus moves a pending invitation to status. It returns
	// ErrInvitationNotFound when no pending row matches.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.InvitationStatus) error
	// RevokePending revokes pending invitations of the subscription, only those
	// addressed to inviteeID when it is not nil, and returns the revoked rows.
	RevokePending(ctx context.Context, subscriptionID uuid.UUID, inviteeID *uuid.UUID) ([]*entity.Invitation, error)
}
