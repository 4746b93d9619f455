package impl

import (
	"context"
	"testing"

	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type notificationServiceFixtures struct {
	*storeFixtures
	service *notificationService
}

func createTestNotificationService(t *testing.T) notificationServiceFixtures {
	store := newStoreFixtures(t)

	svc := NewNotificationService(NotificationServiceParams{
		TxManager: store.txManager,
		Identity:  store.identity,
		Bus:       store.bus,
		Logger:    newDiscardLogger(),
	}).(*notificationService)

	return notificationServiceFixtures{storeFixtures: store, service: svc}
}

func TestNotificationService_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		input *usecase.ListNotificationsInput
		want  repository.NotificationFilter
	}{
		{
			name:  "defaults",
			input: nil,
			want:  repository.NotificationFilter{Limit: defaultNotificationLimit},
		},
		{
			name:  "caps the page size",
			input: &usecase.ListNotificationsInput{Limit: 1000, Offset: 20, UnreadOnly: true},
			want:  repository.NotificationFilter{Limit: maxNotificationLimit, Offset: 20, UnreadOnly: true},
		},
		{
			name:  "negative offset",
			input: &usecase.ListNotificationsInput{Limit: 10, Offset: -5},
			want:  repository.NotificationFilter{Limit: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestNotificationService(t)
			userID := uuid.New()

			fx.notificationRepo.EXPECT().FindByUser(ctx, userID, tt.want).Return(nil, nil)

			_, err := fx.service.List(ctx, userID, tt.input)

			require.NoError(t, err)
		})
	}
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()
	fx := createTestNotificationService(t)
	userID := uuid.New()

	fx.notificationRepo.EXPECT().CountUnread(ctx, userID).Return(int64(3), nil)

	count, err := fx.service.UnreadCount(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes an update", func(t *testing.T) {
		fx := createTestNotificationService(t)
		userID, id := uuid.New(), uuid.New()
		fx.actingAs(userID)

		fx.notificationRepo.EXPECT().MarkRead(ctx, id, userID).Return(nil)

		require.NoError(t, fx.service.MarkRead(ctx, id, userID))

		updates := fx.events(service.TopicNotifications, service.OpUpdate)
		require.Len(t, updates, 1)
		assert.Equal(t, id, updates[0].RowID)
	})

	t.Run("another user's notification", func(t *testing.T) {
		fx := createTestNotificationService(t)
		userID, id := uuid.New(), uuid.New()
		fx.actingAs(userID)

		fx.notificationRepo.EXPECT().MarkRead(ctx, id, userID).Return(repository.ErrNotificationNotFound)

		err := fx.service.MarkRead(ctx, id, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
		assert.Empty(t, fx.published)
	})
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctx := context.Background()

	t.Run("announces one update for the whole inbox", func(t *testing.T) {
		fx := createTestNotificationService(t)
		userID := uuid.New()
		fx.actingAs(userID)

		fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(4), nil)

		updated, err := fx.service.MarkAllRead(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, int64(4), updated)
		updates := fx.events(service.TopicNotifications, service.OpUpdate)
		require.Len(t, updates, 1)
		assert.Equal(t, uuid.Nil, updates[0].RowID)
	})

	t.Run("nothing unread stays quiet", func(t *testing.T) {
		fx := createTestNotificationService(t)
		userID := uuid.New()
		fx.actingAs(userID)

		fx.notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(int64(0), nil)

		_, err := fx.service.MarkAllRead(ctx, userID)

		require.NoError(t, err)
		assert.Empty(t, fx.published)
	})
}

func TestNotificationService_Delete(t *testing.T) {
	ctx := context.Background()
	fx := createTestNotificationService(t)
	userID, id := uuid.New(), uuid.New()
	fx.actingAs(userID)

	fx.notificationRepo.EXPECT().Delete(ctx, id, userID).Return(nil)

	require.NoError(t, fx.service.Delete(ctx, id, userID))

	deletes := fx.events(service.TopicNotifications, service.OpDelete)
	require.Len(t, deletes, 1)
	assert.Equal(t, id, deletes[0].RowID)
	assert.True(t, deletes[0].Affects(userID))
}

func TestNotificationService_ClearAll(t *testing.T) {
	ctx := context.Background()
	fx := createTestNotificationService(t)
	userID := uuid.New()
	fx.actingAs(userID)

	fx.notificationRepo.EXPECT().DeleteAll(ctx, userID).Return(int64(7), nil)

	deleted, err := fx.service.ClearAll(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
	assert.Len(t, fx.events(service.TopicNotifications, service.OpDelete), 1)
}

func TestNotificationService_RevokedSession(t *testing.T) {
	ctx := context.Background()
	fx := createTestNotificationService(t)
	fx.identity.EXPECT().CurrentUserID(ctx).Return(uuid.Nil, service.ErrIdentityRevoked)

	_, err := fx.service.ClearAll(ctx, uuid.New())

	assert.True(t, errors.Is(err, domainerrors.ErrSessionRevoked))
}
