package session

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *Registry {
	return NewRegistry(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestRegistry_CurrentUserID(t *testing.T) {
	r := newTestRegistry()
	userID, sessionID := uuid.New(), uuid.New()

	_, err := r.CurrentUserID(context.Background())
	assert.ErrorIs(t, err, service.ErrNoIdentity)

	ctx, release := r.Bind(context.Background(), sessionID, userID)
	defer release()

	got, err := r.CurrentUserID(ctx)
	require.NoError(t, err)
	assert.Equal(t, userID, got)

	sid, ok := SessionIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, sessionID, sid)
}

func TestRegistry_RevokeCancelsBoundContexts(t *testing.T) {
	r := newTestRegistry()
	userID, sessionID := uuid.New(), uuid.New()

	var changes []service.IdentityChange
	reg := r.OnIdentityChange(func(c service.IdentityChange) { changes = append(changes, c) })
	defer reg.Close()

	ctx, release := r.Bind(context.Background(), sessionID, userID)
	defer release()

	r.Revoke(sessionID, ReasonLogout)

	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("bound context was not cancelled")
	}
	assert.ErrorIs(t, context.Cause(ctx), service.ErrIdentityRevoked)

	_, err := r.CurrentUserID(ctx)
	assert.ErrorIs(t, err, service.ErrIdentityRevoked)

	require.Len(t, changes, 1)
	assert.Equal(t, service.IdentityChange{SessionID: sessionID, UserID: userID, Reason: ReasonLogout}, changes[0])
}

func TestRegistry_BindAfterRevokeFailsClosed(t *testing.T) {
	r := newTestRegistry()
	sessionID := uuid.New()

	r.Revoke(sessionID, ReasonRevoked)

	ctx, release := r.Bind(context.Background(), sessionID, uuid.New())
	defer release()

	assert.Error(t, ctx.Err())
	_, err := r.CurrentUserID(ctx)
	assert.ErrorIs(t, err, service.ErrIdentityRevoked)
}

func TestRegistry_ReleaseIsNotRevocation(t *testing.T) {
	r := newTestRegistry()
	userID, sessionID := uuid.New(), uuid.New()

	first, release := r.Bind(context.Background(), sessionID, userID)
	release()
	assert.Error(t, first.Err())

	second, releaseSecond := r.Bind(context.Background(), sessionID, userID)
	defer releaseSecond()

	got, err := r.CurrentUserID(second)
	require.NoError(t, err)
	assert.Equal(t, userID, got)
}

func TestRegistry_RevokeUserLeavesOtherUsers(t *testing.T) {
	r := newTestRegistry()
	alice, bob := uuid.New(), uuid.New()

	aliceCtx, releaseAlice := r.Bind(context.Background(), uuid.New(), alice)
	defer releaseAlice()
	bobCtx, releaseBob := r.Bind(context.Background(), uuid.New(), bob)
	defer releaseBob()

	r.RevokeUser(alice, ReasonRevoked)

	assert.Error(t, aliceCtx.Err())
	assert.NoError(t, bobCtx.Err())
}

func TestRegistry_ClosedListenerIsNotCalled(t *testing.T) {
	r := newTestRegistry()

	calls := 0
	reg := r.OnIdentityChange(func(service.IdentityChange) { calls++ })
	reg.Close()
	reg.Close()

	r.Revoke(uuid.New(), ReasonRevoked)
	assert.Zero(t, calls)
}

func TestRegistry_ForgetDropsOldMarkers(t *testing.T) {
	r := newTestRegistry()
	sessionID := uuid.New()
	r.Revoke(sessionID, ReasonExpired)

	r.forget(time.Now().Add(time.Minute))

	ctx, release := r.Bind(context.Background(), sessionID, uuid.New())
	defer release()
	assert.NoError(t, ctx.Err())
}
