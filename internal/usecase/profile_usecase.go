package usecase

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
)

// UpdateProfileInput holds the profile fields to change. Nil fields are kept.
type UpdateProfileInput struct {
	Username  *string
	Email     *string
	AvatarURL *string
}

// ProfileUsecase reads and edits the signed-in user's profile.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*entity.User, error)
	// FriendQRCode renders the user's identifier as a PNG other users can scan
	// to send a friend request.
	FriendQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error)
}
