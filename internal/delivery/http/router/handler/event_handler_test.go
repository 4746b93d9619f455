package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"subsplit/internal/delivery/http/middleware"
	"subsplit/internal/domain/service"
	mockservice "subsplit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncRecorder is a ResponseRecorder that can be read while the stream is
// still writing. Writes wait for hold to close when it is set.
type syncRecorder struct {
	mu   sync.Mutex
	rec  *httptest.ResponseRecorder
	hold chan struct{}
}

func newSyncRecorder() *syncRecorder {
	return &syncRecorder{rec: httptest.NewRecorder()}
}

func (r *syncRecorder) Header() http.Header {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rec.Header()
}

func (r *syncRecorder) WriteHeader(code int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rec.WriteHeader(code)
}

func (r *syncRecorder) Write(b []byte) (int, error) {
	if r.hold != nil {
		<-r.hold
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rec.Write(b)
}

func (r *syncRecorder) Flush() {}

func (r *syncRecorder) body() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rec.Body.String()
}

type streamHarness struct {
	rec      *syncRecorder
	cancel   context.CancelCauseFunc
	done     chan error
	handler  service.ChangeHandler
	filter   service.ChangeFilter
	userID   uuid.UUID
	bus      *mockservice.MockChangeBus
	register *mockservice.MockRegistration
}

func startStream(t *testing.T, heartbeat time.Duration, hold chan struct{}) *streamHarness {
	t.Helper()

	s := &streamHarness{
		rec:      newSyncRecorder(),
		done:     make(chan error, 1),
		userID:   uuid.New(),
		bus:      mockservice.NewMockChangeBus(t),
		register: mockservice.NewMockRegistration(t),
	}
	s.rec.hold = hold

	subscribed := make(chan struct{})
	s.bus.EXPECT().Subscribe(service.TopicAll, mock.Anything, mock.Anything).
		RunAndReturn(func(_ service.Topic, filter service.ChangeFilter, handler service.ChangeHandler) service.Registration {
			s.filter, s.handler = filter, handler
			close(subscribed)

			return s.register
		})
	s.register.EXPECT().Close().Return()

	h := &EventHandler{bus: s.bus, heartbeat: heartbeat, logger: newDiscardLogger()}

	ctx, cancel := context.WithCancelCause(context.Background())
	s.cancel = cancel
	t.Cleanup(func() { cancel(nil) })

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	c := e.NewContext(req, s.rec)
	middleware.SetIdentity(c, s.userID, uuid.New())

	go func() { s.done <- h.Stream(c) }()

	select {
	case <-subscribed:
	case <-time.After(time.Second):
		t.Fatal("stream never subscribed")
	}

	return s
}

func (s *streamHarness) waitFor(t *testing.T, fragment string) {
	t.Helper()

	assert.Eventually(t, func() bool {
		return strings.Contains(s.rec.body(), fragment)
	}, time.Second, 5*time.Millisecond, "missing %q in %q", fragment, s.rec.body())
}

func (s *streamHarness) stop(t *testing.T, cause error) {
	t.Helper()

	s.cancel(cause)
	select {
	case err := <-s.done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("stream did not stop")
	}
}

func TestEventHandler_Stream_DeliversChanges(t *testing.T) {
	s := startStream(t, time.Hour, nil)

	s.waitFor(t, "event: ready\ndata: {\"userId\":\""+s.userID.String()+"\"}\n\n")

	other := uuid.New()
	assert.True(t, s.filter(service.ChangeEvent{UserIDs: []uuid.UUID{other, s.userID}}))
	assert.False(t, s.filter(service.ChangeEvent{UserIDs: []uuid.UUID{other}}))

	rowID := uuid.New()
	s.handler(context.Background(), service.ChangeEvent{
		Topic:   service.TopicFriendships,
		Op:      service.OpInsert,
		RowID:   rowID,
		UserIDs: []uuid.UUID{s.userID},
	})

	s.waitFor(t, "event: change\n")
	s.waitFor(t, `"rowId":"`+rowID.String()+`"`)

	s.stop(t, context.Canceled)
	assert.NotContains(t, s.rec.body(), "event: revoked")
	assert.Equal(t, "text/event-stream", s.rec.Header().Get(echo.HeaderContentType))
}

func TestEventHandler_Stream_Heartbeat(t *testing.T) {
	s := startStream(t, 10*time.Millisecond, nil)

	s.waitFor(t, ": ping\n\n")

	s.stop(t, context.Canceled)
}

func TestEventHandler_Stream_RevokedSession(t *testing.T) {
	s := startStream(t, time.Hour, nil)
	s.waitFor(t, "event: ready")

	s.stop(t, service.ErrIdentityRevoked)

	assert.Contains(t, s.rec.body(), "event: revoked\n")
}

func TestEventHandler_Stream_OverflowAsksForResync(t *testing.T) {
	hold := make(chan struct{})
	s := startStream(t, time.Hour, hold)

	// The ready write is held, so nothing drains the buffer yet.
	for range streamBufferSize + 8 {
		s.handler(context.Background(), service.ChangeEvent{Topic: service.TopicNotifications, UserIDs: []uuid.UUID{s.userID}})
	}
	close(hold)

	s.waitFor(t, "event: resync\n")
	s.waitFor(t, "event: change\n")
	body := s.rec.body()
	assert.Less(t, strings.Index(body, "event: resync"), strings.Index(body, "event: change"))

	s.stop(t, context.Canceled)
}

func TestEventHandler_Stream_RequiresIdentity(t *testing.T) {
	h := &EventHandler{bus: mockservice.NewMockChangeBus(t), heartbeat: time.Hour, logger: newDiscardLogger()}

	rec := serve(t, route{http.MethodGet, "/events", h.Stream}, "/events", "", uuid.Nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
