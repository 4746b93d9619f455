package usecase

import (
	"context"

	"subsplit/internal/domain/entity"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
)

// ListNotificationsInput pages through a user's notifications.
type ListNotificationsInput struct {
	UnreadOnly bool
	Limit      int
	Offset     int
}

// PushDeliveryResult summarises one push fan-out.
type PushDeliveryResult struct {
	Devices            int
	SuccessCount       int
	FailureCount       int
	DeactivatedDevices int64
}

// NotificationUsecase defines the interface for notification management use
// cases. Every operation is scoped to the recipient.
type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID, input *ListNotificationsInput) ([]*entity.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	Delete(ctx context.Context, notificationID, userID uuid.UUID) error
	ClearAll(ctx context.Context, userID uuid.UUID) (int64, error)
}

// PushUsecase delivers notification pushes to the recipient's devices.
type PushUsecase interface {
	DeliverPush(ctx context.Context, event *service.PushEvent) (*PushDeliveryResult, error)
}
