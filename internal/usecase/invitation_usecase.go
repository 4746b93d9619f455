package usecase

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
)

// InvitationUsecase moves friends into subscriptions.
type InvitationUsecase interface {
	Invite(ctx context.Context, subscriptionID, inviterID, inviteeID uuid.UUID) (*entity.Invitation, error)

	// AcceptInvitation answers the invitation delivered by notificationID and
	// returns the subscription with its new member.
	AcceptInvitation(ctx context.Context, notificationID, userID uuid.UUID) (*entity.Subscription, error)
	DeclineInvitation(ctx context.Context, notificationID, userID uuid.UUID) error

	ListInvitations(ctx context.Context, userID uuid.UUID) ([]*entity.Invitation, error)
}
