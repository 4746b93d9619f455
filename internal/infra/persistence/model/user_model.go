package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// It is an exported type so it can be used by the GORM Gen tool from other packages.
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WalletAddress *string   `gorm:"type:varchar(64);uniqueIndex:idx_users_wallet_address,where:wallet_address IS NOT NULL"`
	Email         *string   `gorm:"type:varchar(255);uniqueIndex:idx_users_email,where:email IS NOT NULL"`
	Username      string    `gorm:"type:varchar(50);not null"`
	AvatarURL     *string   `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
