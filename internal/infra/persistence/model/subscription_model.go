package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SubscriptionModel mirrors the 'subscriptions' table.
type SubscriptionModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Cost         decimal.Decimal `gorm:"type:numeric(12,2);not null;check:chk_subscriptions_cost,cost >= 0"`
	BillingCycle string          `gorm:"type:varchar(20);not null;default:'monthly'"`
	DueDate      time.Time       `gorm:"type:date;not null"`
	OwnerID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	LogoURL      *string         `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Owner   *UserModel                `gorm:"foreignKey:OwnerID"`
	Members []SubscriptionMemberModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
}

func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// SubscriptionMemberModel mirrors the 'subscription_members' table.
type SubscriptionMemberModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriptionID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_members_pair"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_subscription_members_pair;index"`
	Share          decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Paid           bool            `gorm:"not null;default:false"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (SubscriptionMemberModel) TableName() string {
	return "subscription_members"
}
