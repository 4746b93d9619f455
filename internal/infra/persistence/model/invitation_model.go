package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationModel mirrors the 'subscription_invitations' table. The partial
// unique index allows one pending invitation per invitee and subscription.
type InvitationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_pending,where:status = 'pending'"`
	InviteeID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_invitations_pending,where:status = 'pending';index"`
	InviterID      uuid.UUID `gorm:"type:uuid;not null"`
	Status         string    `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Subscription *SubscriptionModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
	Inviter      *UserModel         `gorm:"foreignKey:InviterID;constraint:OnDelete:CASCADE"`
}

func (InvitationModel) TableName() string {
	return "subscription_invitations"
}
