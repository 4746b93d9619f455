package repository

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrNotificationNotFound = errors.New("notification not found")

// NotificationFilter narrows a listing of one recipient's notifications.
type NotificationFilter struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// NotificationRepository is the per-recipient outbox. Every read and write is
// scoped to the recipient.
type NotificationRepository interface {
	CreateBatch(ctx context.Context, notifications []*entity.Notification) error
	FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter NotificationFilter) ([]*entity.Notification, error)
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, id, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error)
	// DeleteByContent removes the recipient's notifications of type whose
	// content field equals value and returns the deleted ids.
	DeleteByContent(ctx context.Context, userID uuid.UUID, notificationType entity.NotificationType, field, value string) ([]uuid.UUID, error)
}
