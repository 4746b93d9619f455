package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"subsplit/internal/domain/entity"
	"subsplit/internal/domain/service"
	"subsplit/internal/infra/bus"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type capturePublisher struct {
	mu     sync.Mutex
	events []*service.PushEvent
	err    error
}

func (p *capturePublisher) PublishPushEvent(_ context.Context, event *service.PushEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *capturePublisher) Close() error {
	return nil
}

func (p *capturePublisher) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	return len(p.events)
}

func testNotification() *entity.Notification {
	n := entity.NewNotification(uuid.New(), entity.FriendRequestContent{
		SenderInfo: entity.SenderInfo{SenderID: uuid.New(), SenderUsername: "alice"},
	}, map[string]string{"senderId": "abc"})
	n.ID = uuid.New()

	return n
}

func TestBuildPushEvent(t *testing.T) {
	n := testNotification()

	event := BuildPushEvent(n, "req-1")

	assert.Equal(t, "req-1", event.RequestID)
	assert.Equal(t, n.ID.String(), event.NotificationID)
	assert.Equal(t, n.UserID.String(), event.UserID)
	assert.Equal(t, "friend_request", event.NotificationType)
	assert.Equal(t, "New friend request", event.Title)
	assert.Equal(t, "alice wants to be your friend", event.Body)
	assert.Equal(t, "abc", event.Data["senderId"])
	assert.Equal(t, "friend_request", event.Data["type"])
}

func TestPushForwarder_ViaBus(t *testing.T) {
	b := bus.NewMemoryBus(4, newDiscardLogger())
	t.Cleanup(func() { _ = b.Close() })

	publisher := &capturePublisher{}
	b.Subscribe(service.TopicNotifications, isNotificationInsert, NewPushForwarder(publisher, newDiscardLogger()))

	n := testNotification()
	b.Publish(
		service.ChangeEvent{Topic: service.TopicNotifications, Op: service.OpInsert, RowID: n.ID, Payload: n},
		service.ChangeEvent{Topic: service.TopicNotifications, Op: service.OpDelete, RowID: uuid.New()},
		service.ChangeEvent{Topic: service.TopicFriendships, Op: service.OpInsert, RowID: uuid.New(), Payload: n},
	)

	require.Eventually(t, func() bool { return publisher.count() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, 1, publisher.count())
}

func TestPushForwarder_IgnoresMissingPayloadAndErrors(t *testing.T) {
	publisher := &capturePublisher{err: errors.New("queue down")}
	forward := NewPushForwarder(publisher, newDiscardLogger())

	forward(context.Background(), service.ChangeEvent{Topic: service.TopicNotifications, Op: service.OpInsert})
	assert.Zero(t, publisher.count())

	forward(context.Background(), service.ChangeEvent{Topic: service.TopicNotifications, Op: service.OpInsert, Payload: testNotification()})
	assert.Equal(t, 1, publisher.count())
}

func TestLocalHTTPPublisher_PostsPushEnvelope(t *testing.T) {
	var received PubSubPushMessage
	var requestID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		_ = json.NewDecoder(r.Body).Decode(&received)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())
	event := BuildPushEvent(testNotification(), "req-2")

	require.NoError(t, publisher.PublishPushEvent(context.Background(), event))

	assert.Equal(t, "req-2", requestID)
	assert.Equal(t, event.NotificationID, received.Message.Attributes["notification_id"])
	assert.Equal(t, event.NotificationType, received.Message.Attributes["notification_type"])

	raw, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.PushEvent
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, *event, decoded)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, newDiscardLogger())

	event := BuildPushEvent(testNotification(), "")
	err := publisher.PublishPushEvent(context.Background(), event)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
	assert.Contains(t, err.Error(), event.NotificationID)
}
