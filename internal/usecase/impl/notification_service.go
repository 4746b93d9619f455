package impl

import (
	"context"
	"log/slog"

	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 200
)

type notificationService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	bus       service.ChangeBus
	logger    *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Bus       service.ChangeBus
	Logger    *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		txManager: params.TxManager,
		identity:  params.Identity,
		bus:       params.Bus,
		logger:    params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the notifications of userID, newest first.
func (srv *notificationService) List(ctx context.Context, userID uuid.UUID, input *usecase.ListNotificationsInput) ([]*entity.Notification, error) {
	filter := repository.NotificationFilter{Limit: defaultNotificationLimit}
	if input != nil {
		filter.UnreadOnly = input.UnreadOnly
		filter.Offset = max(input.Offset, 0)
		if input.Limit > 0 {
			filter.Limit = min(input.Limit, maxNotificationLimit)
		}
	}

	var notifications []*entity.Notification
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		notifications, err = repoFactory.NotificationRepo().FindByUser(ctx, userID, filter)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notifications")
	}

	return notifications, nil
}

// UnreadCount returns how many unread notifications userID has.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		count, err = repoFactory.NotificationRepo().CountUnread(ctx, userID)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one notification of userID as read.
func (srv *notificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NotificationRepo().MarkRead(ctx, notificationID, userID); err != nil {
			return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to mark notification read")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute mark read transaction")
	}

	changes := &changeSet{}
	changes.change(service.TopicNotifications, service.OpUpdate, notificationID, nil, userID)
	changes.publish(ctx, srv.bus)

	return nil
}

// MarkAllRead flags every notification of userID as read.
func (srv *notificationService) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return 0, err
	}

	var updated int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		updated, err = repoFactory.NotificationRepo().MarkAllRead(ctx, userID)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute mark all read transaction")
	}

	if updated > 0 {
		// uuid.Nil stands for every row of the user.
		changes := &changeSet{}
		changes.change(service.TopicNotifications, service.OpUpdate, uuid.Nil, nil, userID)
		changes.publish(ctx, srv.bus)
	}
	srv.log(ctx).Debug("Marked notifications read", slog.Any("userID", userID), slog.Int64("count", updated))

	return updated, nil
}

// Delete removes one notification of userID.
func (srv *notificationService) Delete(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NotificationRepo().Delete(ctx, notificationID, userID); err != nil {
			return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to delete notification")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute delete notification transaction")
	}

	changes := &changeSet{}
	changes.notificationsDeleted(userID, []uuid.UUID{notificationID})
	changes.publish(ctx, srv.bus)

	return nil
}

// ClearAll removes every notification of userID.
func (srv *notificationService) ClearAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return 0, err
	}

	var deleted int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		deleted, err = repoFactory.NotificationRepo().DeleteAll(ctx, userID)

		return err
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to execute clear notifications transaction")
	}

	if deleted > 0 {
		changes := &changeSet{}
		changes.notificationsDeleted(userID, []uuid.UUID{uuid.Nil})
		changes.publish(ctx, srv.bus)
	}
	srv.log(ctx).Info("Cleared notifications", slog.Any("userID", userID), slog.Int64("count", deleted))

	return deleted, nil
}
