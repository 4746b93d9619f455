package impl

import (
	"context"
	"time"

	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/entity"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// changeSet collects what one transaction does to the outbox and which row
// changes to announce once it commits.
type changeSet struct {
	notifications []*entity.Notification
	events        []service.ChangeEvent
}

// notify queues a notification for userID.
func (c *changeSet) notify(userID uuid.UUID, content entity.NotificationContent, metadata map[string]string) {
	c.notifications = append(c.notifications, entity.NewNotification(userID, content, metadata))
}

// change queues a row change event.
func (c *changeSet) change(topic service.Topic, op service.ChangeOp, rowID uuid.UUID, subscriptionID *uuid.UUID, userIDs ...uuid.UUID) {
	c.events = append(c.events, service.ChangeEvent{
		Topic:          topic,
		Op:             op,
		RowID:          rowID,
		UserIDs:        userIDs,
		SubscriptionID: subscriptionID,
	})
}

// notificationsDeleted queues delete events for notification rows of userID.
func (c *changeSet) notificationsDeleted(userID uuid.UUID, ids []uuid.UUID) {
	for _, id := range ids {
		c.change(service.TopicNotifications, service.OpDelete, id, nil, userID)
	}
}

// deleteActionable removes the recipient's pending-decision notifications of
// type t whose content field matches value.
func (c *changeSet) deleteActionable(ctx context.Context, repo repository.NotificationRepository, userID uuid.UUID, t entity.NotificationType, field, value string) error {
	ids, err := repo.DeleteByContent(ctx, userID, t, field, value)
	if err != nil {
		return errors.Wrapf(err, "failed to delete %s notifications", t)
	}
	c.notificationsDeleted(userID, ids)

	return nil
}

// flush writes the queued notifications with repo and queues their insert
// events. It must run inside the transaction that made the change.
func (c *changeSet) flush(ctx context.Context, repo repository.NotificationRepository) error {
	if len(c.notifications) == 0 {
		return nil
	}

	if err := repo.CreateBatch(ctx, c.notifications); err != nil {
		return errors.Wrap(err, "failed to create notifications")
	}

	for _, n := range c.notifications {
		c.events = append(c.events, service.ChangeEvent{
			Topic:   service.TopicNotifications,
			Op:      service.OpInsert,
			RowID:   n.ID,
			UserIDs: []uuid.UUID{n.UserID},
			Payload: n,
		})
	}

	return nil
}

// publish hands the queued events to the bus. Call it only after commit.
func (c *changeSet) publish(ctx context.Context, bus service.ChangeBus) {
	if bus == nil || len(c.events) == 0 {
		return
	}

	now := time.Now()
	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	for i := range c.events {
		c.events[i].At = now
		c.events[i].RequestID = requestID
	}

	bus.Publish(c.events...)
}
