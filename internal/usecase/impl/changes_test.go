package impl

import (
	"context"
	"testing"

	"subsplit/internal/domain/entity"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeSet_FlushAndPublish(t *testing.T) {
	ctx := context.Background()
	store := newStoreFixtures(t)
	alice, bob := uuid.New(), uuid.New()

	changes := &changeSet{}
	changes.notify(alice, entity.FriendRequestContent{}, nil)
	changes.notify(bob, entity.FriendRequestContent{}, nil)
	changes.change(service.TopicFriendships, service.OpInsert, uuid.New(), nil, alice, bob)

	require.NoError(t, changes.flush(ctx, store.notificationRepo))
	changes.publish(ctx, store.bus)

	require.Len(t, store.published, 3)
	inserts := store.events(service.TopicNotifications, service.OpInsert)
	require.Len(t, inserts, 2)
	assert.Equal(t, []uuid.UUID{alice}, inserts[0].UserIDs)
	assert.Equal(t, changes.notifications[0].ID, inserts[0].RowID)
	for _, e := range store.published {
		assert.False(t, e.At.IsZero())
	}
}

func TestChangeSet_EmptyFlushWritesNothing(t *testing.T) {
	store := newStoreFixtures(t)
	changes := &changeSet{}

	require.NoError(t, changes.flush(context.Background(), store.notificationRepo))
	changes.publish(context.Background(), store.bus)

	store.notificationRepo.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	assert.Empty(t, store.published)
}
