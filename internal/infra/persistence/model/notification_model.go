package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel mirrors the 'notifications' table. Content and metadata
// are stored as jsonb text.
type NotificationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_user_created,priority:1"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:jsonb;not null"`
	Metadata  *string   `gorm:"type:jsonb"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time `gorm:"index:idx_notifications_user_created,priority:2,sort:desc"`

	User *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
