package model

import (
	"time"

	"github.com/google/uuid"
)

// FriendshipModel mirrors the 'friendships' table. PairLow and PairHigh hold
// the two user ids in sorted order so the unique index covers the unordered pair.
type FriendshipModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;check:chk_friendships_not_self,user_id <> friend_id"`
	FriendID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PairLow   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	PairHigh  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_friendships_pair"`
	Status    string    `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Requester *UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Recipient *UserModel `gorm:"foreignKey:FriendID;constraint:OnDelete:CASCADE"`
}

func (FriendshipModel) TableName() string {
	return "friendships"
}
