package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentModel mirrors the 'payments' table. Rows outlive the subscription
// they refer to, so there is no foreign key on subscription_id.
type PaymentModel struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SubscriptionID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	SenderID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiverID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency        string          `gorm:"type:varchar(10);not null;default:'USD'"`
	Status          string          `gorm:"type:varchar(20);not null;default:'pending'"`
	TransactionHash *string         `gorm:"type:varchar(100)"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (PaymentModel) TableName() string {
	return "payments"
}
