package entity

import (
	"bytes"
	"time"

	"github.com/google/uuid"
)

// FriendshipStatus is the lifecycle state of a friendship row.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
	FriendshipRejected FriendshipStatus = "rejected"
)

// Friendship links two users. UserID is whoever sent the latest request,
// FriendID is the recipient who may answer it. Once accepted the relation is
// symmetric.
type Friendship struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	FriendID  uuid.UUID        `json:"friendId"`
	Status    FriendshipStatus `json:"status"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`

	// Requester is the profile of UserID, attached by list queries.
	Requester *User `json:"requester,omitempty"`
}

// Other returns the party of the friendship that is not userID.
func (f *Friendship) Other(userID uuid.UUID) uuid.UUID {
	if f.UserID == userID {
		return f.FriendID
	}

	return f.UserID
}

// Involves reports whether userID is one of the two parties.
func (f *Friendship) Involves(userID uuid.UUID) bool {
	return f.UserID == userID || f.FriendID == userID
}

// OrderedPair returns the two ids in a fixed order so that (a,b) and (b,a)
// map to the same key.
func OrderedPair(a, b uuid.UUID) (low, high uuid.UUID) {
	if bytes.Compare(a[:], b[:]) <= 0 {
		return a, b
	}

	return b, a
}
