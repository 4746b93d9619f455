package pubsub

import (
	"context"
	"log/slog"

	"subsplit/internal/domain/entity"
	"subsplit/internal/domain/service"

	"go.uber.org/fx"
)

// BridgeParams holds dependencies for the push bridge, injected by Fx
type BridgeParams struct {
	fx.In

	Lc        fx.Lifecycle
	Bus       service.ChangeBus
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// RegisterPushBridge forwards every committed notification insert to the push
// worker through the event publisher.
func RegisterPushBridge(params BridgeParams) {
	var registration service.Registration

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			registration = params.Bus.Subscribe(service.TopicNotifications, isNotificationInsert,
				NewPushForwarder(params.Publisher, params.Logger))

			return nil
		},
		OnStop: func(context.Context) error {
			if registration != nil {
				registration.Close()
			}

			return nil
		},
	})
}

func isNotificationInsert(event service.ChangeEvent) bool {
	return event.Op == service.OpInsert
}

// NewPushForwarder returns a change handler that publishes a push event for
// each inserted notification carried in the event payload.
func NewPushForwarder(publisher service.EventPublisher, logger *slog.Logger) service.ChangeHandler {
	return func(ctx context.Context, event service.ChangeEvent) {
		notification, ok := event.Payload.(*entity.Notification)
		if !ok || notification == nil {
			return
		}

		push := BuildPushEvent(notification, event.RequestID)
		if err := publisher.PublishPushEvent(ctx, push); err != nil {
			logger.ErrorContext(ctx, "Failed to publish push event",
				slog.String("notification_id", push.NotificationID),
				slog.String("user_id", push.UserID),
				slog.Any("error", err),
			)
		}
	}
}

// BuildPushEvent renders a stored notification as a push request.
func BuildPushEvent(notification *entity.Notification, requestID string) *service.PushEvent {
	title, body := notification.Content.Describe()

	data := map[string]string{
		"notificationId": notification.ID.String(),
		"type":           string(notification.Type),
	}
	for k, v := range notification.Metadata {
		data[k] = v
	}

	return &service.PushEvent{
		RequestID:        requestID,
		NotificationID:   notification.ID.String(),
		UserID:           notification.UserID.String(),
		NotificationType: string(notification.Type),
		Title:            title,
		Body:             body,
		Data:             data,
	}
}
