package bus

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recorder struct {
	mu     sync.Mutex
	events []service.ChangeEvent
}

func (r *recorder) handle(_ context.Context, e service.ChangeEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.events)
}

func TestMemoryBus_DeliversToMatchingTopic(t *testing.T) {
	b := NewMemoryBus(4, newDiscardLogger())
	t.Cleanup(func() { _ = b.Close() })

	friends := &recorder{}
	all := &recorder{}
	b.Subscribe(service.TopicFriendships, nil, friends.handle)
	b.Subscribe(service.TopicAll, nil, all.handle)

	b.Publish(
		service.ChangeEvent{Topic: service.TopicFriendships, Op: service.OpInsert, RowID: uuid.New()},
		service.ChangeEvent{Topic: service.TopicSubscriptions, Op: service.OpUpdate, RowID: uuid.New()},
	)

	assert.Eventually(t, func() bool { return all.count() == 2 }, time.Second, 5*time.Millisecond)
	assert.Eventually(t, func() bool { return friends.count() == 1 }, time.Second, 5*time.Millisecond)
}

func TestMemoryBus_FilterByUser(t *testing.T) {
	b := NewMemoryBus(4, newDiscardLogger())
	t.Cleanup(func() { _ = b.Close() })

	alice, bob := uuid.New(), uuid.New()
	rec := &recorder{}
	b.Subscribe(service.TopicNotifications, service.ForUser(alice), rec.handle)

	b.Publish(
		service.ChangeEvent{Topic: service.TopicNotifications, UserIDs: []uuid.UUID{bob}},
		service.ChangeEvent{Topic: service.TopicNotifications, UserIDs: []uuid.UUID{alice, bob}},
	)

	require.Eventually(t, func() bool { return rec.count() == 1 }, time.Second, 5*time.Millisecond)
	rec.mu.Lock()
	assert.True(t, rec.events[0].Affects(alice))
	rec.mu.Unlock()
}

func TestMemoryBus_PublishDoesNotBlockOnSlowListener(t *testing.T) {
	b := NewMemoryBus(1, newDiscardLogger())
	t.Cleanup(func() { _ = b.Close() })

	release := make(chan struct{})
	var handled atomic.Int32
	b.Subscribe(service.TopicAll, nil, func(ctx context.Context, _ service.ChangeEvent) {
		<-release
		handled.Add(1)
	})

	fast := &recorder{}
	b.Subscribe(service.TopicAll, nil, fast.handle)

	published := make(chan struct{})
	go func() {
		for range 10 {
			b.Publish(service.ChangeEvent{Topic: service.TopicSubscriptions})
		}
		close(published)
	}()

	select {
	case <-published:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a slow listener")
	}

	assert.Eventually(t, func() bool { return fast.count() == 10 }, time.Second, 5*time.Millisecond)

	close(release)
	assert.Eventually(t, func() bool { return handled.Load() == 10 }, time.Second, 5*time.Millisecond)
}

func TestMemoryBus_RegistrationCloseIsIdempotent(t *testing.T) {
	b := NewMemoryBus(4, newDiscardLogger())
	t.Cleanup(func() { _ = b.Close() })

	rec := &recorder{}
	reg := b.Subscribe(service.TopicAll, nil, rec.handle)
	reg.Close()
	reg.Close()

	b.Publish(service.ChangeEvent{Topic: service.TopicFriendships})
	time.Sleep(20 * time.Millisecond)

	assert.Zero(t, rec.count())
}

func TestMemoryBus_HandlerPanicKeepsListenerAlive(t *testing.T) {
	b := NewMemoryBus(4, newDiscardLogger())
	t.Cleanup(func() { _ = b.Close() })

	var calls atomic.Int32
	b.Subscribe(service.TopicAll, nil, func(ctx context.Context, _ service.ChangeEvent) {
		if calls.Add(1) == 1 {
			panic("boom")
		}
	})

	b.Publish(service.ChangeEvent{Topic: service.TopicFriendships}, service.ChangeEvent{Topic: service.TopicFriendships})

	assert.Eventually(t, func() bool { return calls.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestMemoryBus_CloseStopsDelivery(t *testing.T) {
	b := NewMemoryBus(4, newDiscardLogger())

	rec := &recorder{}
	b.Subscribe(service.TopicAll, nil, rec.handle)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())

	b.Publish(service.ChangeEvent{Topic: service.TopicFriendships})
	late := b.Subscribe(service.TopicAll, nil, rec.handle)
	late.Close()

	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, rec.count())
}
