package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserDevice is a device registered for push delivery of notifications.
type UserDevice struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	FCMToken  string    `json:"fcmToken"`
	DeviceID  string    `json:"deviceId"` // Client generated, stable per install.
	Platform  string    `json:"platform"` // ios, android or web.
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
