package entity

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus tracks an offer of subscription membership.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationDeclined InvitationStatus = "declined"
	InvitationRevoked  InvitationStatus = "revoked"
)

// Invitation is an offer from a subscription owner to a friend. At most one
// pending invitation exists per (subscription, invitee).
type Invitation struct {
	ID             uuid.UUID        `json:"id"`
	SubscriptionID uuid.UUID        `json:"subscriptionId"`
	InviterID      uuid.UUID        `json:"inviterId"`
	InviteeID      uuid.UUID        `json:"inviteeId"`
	Status         InvitationStatus `json:"status"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`

	Subscription *Subscription `json:"subscription,omitempty"`
	Inviter      *User         `json:"inviter,omitempty"`

	// NotificationID points at the notification that delivered the offer.
	NotificationID *uuid.UUID `json:"notificationId,omitempty"`
}
