package repository

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrSubscriptionNotFound = errors.New("subscription not found")
	ErrMemberNotFound       = errors.New("subscription member not found")
	ErrMemberExists         = errors.New("subscription member already exists")
)

// SubscriptionRepository stores subscriptions and their member rows.
type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	// LockByID loads the subscription and holds a row lock on it until the
	// transaction ends. Mutations of one subscription are serialised through it.
	LockByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)
	Update(ctx context.Context, subscription *entity.Subscription) error
	UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error
	// Delete removes the subscription together with its member rows.
	Delete(ctx context.Context, id uuid.UUID) error
	// FindByUser returns subscriptions the user owns or belongs to.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)

	CreateMember(ctx context.Context, member *entity.SubscriptionMember) error
	// FindMembers returns members in join order with their user profile attached.
	FindMembers(ctx context.Context, subscriptionID uuid.UUID) ([]*entity.SubscriptionMember, error)
	FindMember(ctx context.Context, subscriptionID, userID uuid.UUID) (*entity.SubscriptionMember, error)
	UpdateMemberShares(ctx context.Context, changes []entity.ShareChange) error
	SetMemberPaid(ctx context.Context, subscriptionID, userID uuid.UUID, paid bool) error
	DeleteMember(ctx context.Context, subscriptionID, userID uuid.UUID) error
}
