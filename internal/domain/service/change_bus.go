package service

import (
	"context"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Topic groups change events by the table family they describe.
type Topic string

const (
	TopicFriendships   Topic = "friendships"
	TopicSubscriptions Topic = "subscriptions"
	TopicNotifications Topic = "notifications"
	// TopicAll subscribes to every topic.
	TopicAll Topic = "*"
)

// ChangeOp is the kind of row change.
type ChangeOp string

const (
	OpInsert ChangeOp = "insert"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
)

// ChangeEvent describes one committed row change.
type ChangeEvent struct {
	Topic          Topic       `json:"topic"`
	Op             ChangeOp    `json:"op"`
	RowID          uuid.UUID   `json:"rowId"`
	UserIDs        []uuid.UUID `json:"userIds"`
	SubscriptionID *uuid.UUID  `json:"subscriptionId,omitempty"`
	At             time.Time   `json:"at"`
	// Payload is the row snapshot when the publisher has one.
	Payload any `json:"-"`
	// RequestID of the request that caused the change, for tracing.
	RequestID string `json:"-"`
}

// Affects reports whether userID is one of the users the change concerns.
func (e ChangeEvent) Affects(userID uuid.UUID) bool {
	return slices.Contains(e.UserIDs, userID)
}

// ChangeFilter selects events for a listener. A nil filter accepts everything.
type ChangeFilter func(ChangeEvent) bool

// ForUser accepts events that affect userID.
func ForUser(userID uuid.UUID) ChangeFilter {
	return func(e ChangeEvent) bool {
		return e.Affects(userID)
	}
}

// ChangeHandler consumes one event. It runs on the listener's own goroutine.
type ChangeHandler func(ctx context.Context, event ChangeEvent)

// Registration is the handle returned by Subscribe. Close is idempotent.
type Registration interface {
	Close()
}

// ChangeBus fans committed changes out to in-process listeners. Publish never
// blocks the caller. Delivery is at-least-once to listeners registered at
// publish time and unordered within a burst. Nothing survives a restart.
type ChangeBus interface {
	Publish(events ...ChangeEvent)
	Subscribe(topic Topic, filter ChangeFilter, handler ChangeHandler) Registration
	Close() error
}
