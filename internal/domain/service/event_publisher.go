package service

import (
	"context"
)

// PushEvent asks the push worker to deliver one notification to the devices
// of its recipient.
type PushEvent struct {
	RequestID        string            `json:"request_id,omitempty"`
	NotificationID   string            `json:"notification_id"`
	UserID           string            `json:"user_id"`
	NotificationType string            `json:"notification_type"`
	Title            string            `json:"title"`
	Body             string            `json:"body"`
	Data             map[string]string `json:"data,omitempty"`
}

// EventPublisher forwards push events to the message queue.
type EventPublisher interface {
	PublishPushEvent(ctx context.Context, event *PushEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
