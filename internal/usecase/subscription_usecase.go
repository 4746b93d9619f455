package usecase

import (
	"context"
	"time"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateSubscriptionInput describes a new shared subscription.
type CreateSubscriptionInput struct {
	OwnerID      uuid.UUID
	Name         string
	Cost         decimal.Decimal
	BillingCycle entity.BillingCycle // Defaults to monthly.
	DueDate      time.Time
	LogoURL      *string
}

// UpdateSubscriptionInput changes a subscription. Nil fields are kept.
type UpdateSubscriptionInput struct {
	SubscriptionID uuid.UUID
	ActorID        uuid.UUID
	Name           *string
	Cost           *decimal.Decimal
	BillingCycle   *entity.BillingCycle
	DueDate        *time.Time
	LogoURL        *string
}

// SubscriptionUsecase is the subscription ledger: membership and shares.
type SubscriptionUsecase interface {
	Create(ctx context.Context, input *CreateSubscriptionInput) (*entity.Subscription, error)
	Update(ctx context.Context, input *UpdateSubscriptionInput) (*entity.Subscription, error)

	// Leave removes userID from the subscription. The last member leaving
	// deletes it; an owner leaving hands ownership to the earliest member.
	Leave(ctx context.Context, subscriptionID, userID uuid.UUID) error

	RemoveMember(ctx context.Context, subscriptionID, memberUserID, actorID uuid.UUID) error
	Delete(ctx context.Context, subscriptionID, actorID uuid.UUID) error

	// RecalculateShares splits the cost equally over the current members.
	RecalculateShares(ctx context.Context, subscriptionID, actorID uuid.UUID) ([]*entity.SubscriptionMember, error)

	GetMembers(ctx context.Context, subscriptionID, actorID uuid.UUID) ([]*entity.SubscriptionMember, error)
	Get(ctx context.Context, subscriptionID, actorID uuid.UUID) (*entity.Subscription, error)
	ListUserSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error)
}
