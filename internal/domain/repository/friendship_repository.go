package repository

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrFriendshipNotFound = errors.New("friendship not found")
	// ErrFriendshipExists is returned when a row for the unordered pair already exists.
	ErrFriendshipExists = errors.New("friendship already exists")
)

// FriendshipRepository stores one row per unordered pair of users.
type FriendshipRepository interface {
	Create(ctx context.Context, friendship *entity.Friendship) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error)
	// FindByPair matches the row regardless of which side sent the request.
	FindByPair(ctx context.Context, a, b uuid.UUID) (*entity.Friendship, error)
	// Update writes the direction, status and UpdatedAt of an existing row.
	Update(ctx context.Context, friendship *entity.Friendship) error
	Delete(ctx context.Context, id uuid.UUID) error
	// FindAccepted returns accepted rows where userID is on either side.
	FindAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)
	// FindPendingReceived returns pending rows addressed to userID with the requester attached.
	FindPendingReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)
	FindPendingSent(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)
}
