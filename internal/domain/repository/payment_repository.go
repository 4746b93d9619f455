package repository

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus, transactionHash *string) error
	// FindByUser returns payments the user sent or received, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error)
}
