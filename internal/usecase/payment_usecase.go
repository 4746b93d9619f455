package usecase

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePaymentInput records a member paying their share to the owner.
type CreatePaymentInput struct {
	SubscriptionID  uuid.UUID
	SenderID        uuid.UUID
	ReceiverID      uuid.UUID
	Amount          decimal.Decimal
	Currency        string  // Defaults to USD.
	TransactionHash *string // Set when the transfer already settled.
}

// PaymentUsecase keeps the books on shares paid between members.
type PaymentUsecase interface {
	Create(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, paymentID, actorID uuid.UUID, status entity.PaymentStatus, transactionHash *string) (*entity.Payment, error)
	History(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
	// SendReminder asks memberUserID to pay their share.
	SendReminder(ctx context.Context, subscriptionID, ownerID, memberUserID uuid.UUID) error
}
