package usecase

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
)

// FriendshipUsecase is the friendship graph: requests, answers and removal.
type FriendshipUsecase interface {
	// SendRequest resolves identifier (wallet address or email) to a user and
	// asks them to be friends. A request to an existing friend succeeds
	// without side effects.
	SendRequest(ctx context.Context, requesterID uuid.UUID, identifier string) (*entity.Friendship, error)

	// SendRequestFromQR sends a request to the user encoded in a scanned
	// friend QR payload.
	SendRequestFromQR(ctx context.Context, requesterID uuid.UUID, payload string) (*entity.Friendship, error)

	// Respond accepts or rejects a pending request addressed to responderID.
	Respond(ctx context.Context, requestID, responderID uuid.UUID, accept bool) (*entity.Friendship, error)

	// Remove deletes the friendship between the two users whatever its status.
	Remove(ctx context.Context, userID, friendID uuid.UUID) error

	ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error)
	ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)
	ListSent(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error)
}
