package impl

import (
	"context"
	"testing"
	"time"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	mockSvc "subsplit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type friendshipServiceFixtures struct {
	*storeFixtures
	qrCodes *mockSvc.MockQRCodeService
	service *friendshipService
}

func createTestFriendshipService(t *testing.T) friendshipServiceFixtures {
	store := newStoreFixtures(t)
	qrCodes := mockSvc.NewMockQRCodeService(t)

	svc := NewFriendshipService(FriendshipServiceParams{
		TxManager: store.txManager,
		Identity:  store.identity,
		Bus:       store.bus,
		QRCodes:   qrCodes,
		Logger:    newDiscardLogger(),
	}).(*friendshipService)

	return friendshipServiceFixtures{storeFixtures: store, qrCodes: qrCodes, service: svc}
}

func TestFriendshipService_SendRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a pending request and notifies the target", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice, bob := newTestUser("alice"), newTestUser("bob")
		fx.actingAs(alice.ID)

		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(bob, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, alice.ID, bob.ID).Return(nil, repository.ErrFriendshipNotFound)
		fx.friendRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Friendship")).
			Run(func(_ context.Context, f *entity.Friendship) { f.ID = uuid.New() }).
			Return(nil)

		friendship, err := fx.service.SendRequest(ctx, alice.ID, "  Bob@Example.com ")

		require.NoError(t, err)
		assert.Equal(t, entity.FriendshipPending, friendship.Status)
		assert.Equal(t, alice.ID, friendship.UserID)
		assert.Equal(t, bob.ID, friendship.FriendID)

		notifications := fx.notificationsFor(bob.ID)
		require.Len(t, notifications, 1)
		assert.Equal(t, entity.NotificationFriendRequest, notifications[0].Type)
		assert.Equal(t, alice.ID.String(), notifications[0].Metadata["senderId"])

		inserts := fx.events(service.TopicFriendships, service.OpInsert)
		require.Len(t, inserts, 1)
		assert.True(t, inserts[0].Affects(alice.ID))
		assert.True(t, inserts[0].Affects(bob.ID))
		assert.Len(t, fx.events(service.TopicNotifications, service.OpInsert), 1)
	})

	t.Run("already friends is a no-op", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice, bob := newTestUser("alice"), newTestUser("bob")
		fx.actingAs(alice.ID)
		accepted := &entity.Friendship{ID: uuid.New(), UserID: bob.ID, FriendID: alice.ID, Status: entity.FriendshipAccepted}

		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(bob, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, alice.ID, bob.ID).Return(accepted, nil)

		friendship, err := fx.service.SendRequest(ctx, alice.ID, "bob@example.com")

		require.NoError(t, err)
		assert.Equal(t, accepted, friendship)
		assert.Empty(t, fx.notificationsFor(bob.ID))
		assert.Empty(t, fx.events(service.TopicFriendships, service.OpInsert))
	})

	t.Run("pending request in either direction", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice, bob := newTestUser("alice"), newTestUser("bob")
		fx.actingAs(alice.ID)
		pending := &entity.Friendship{ID: uuid.New(), UserID: bob.ID, FriendID: alice.ID, Status: entity.FriendshipPending}

		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(bob, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, alice.ID, bob.ID).Return(pending, nil)

		_, err := fx.service.SendRequest(ctx, alice.ID, "bob@example.com")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyPending))
		assert.Empty(t, fx.notificationsFor(bob.ID))
	})

	t.Run("rejected request is reopened in the new direction", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice, bob := newTestUser("alice"), newTestUser("bob")
		wallet := "0xabc123"
		bob.WalletAddress = &wallet
		fx.actingAs(alice.ID)
		rejectedAt := time.Now().Add(-48 * time.Hour)
		rejected := &entity.Friendship{ID: uuid.New(), UserID: bob.ID, FriendID: alice.ID, Status: entity.FriendshipRejected, UpdatedAt: rejectedAt}

		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.userRepo.EXPECT().FindByWalletAddress(ctx, wallet).Return(bob, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, alice.ID, bob.ID).Return(rejected, nil)
		fx.friendRepo.EXPECT().Update(ctx, rejected).Return(nil)

		friendship, err := fx.service.SendRequest(ctx, alice.ID, "0xABC123")

		require.NoError(t, err)
		assert.Equal(t, rejected.ID, friendship.ID)
		assert.Equal(t, entity.FriendshipPending, friendship.Status)
		assert.Equal(t, alice.ID, friendship.UserID)
		assert.Equal(t, bob.ID, friendship.FriendID)
		assert.True(t, friendship.UpdatedAt.After(rejectedAt))
		assert.Len(t, fx.notificationsFor(bob.ID), 1)
		assert.Len(t, fx.events(service.TopicFriendships, service.OpUpdate), 1)
	})

	t.Run("self request", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice := newTestUser("alice")
		fx.actingAs(alice.ID)

		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "alice@example.com").Return(alice, nil)

		_, err := fx.service.SendRequest(ctx, alice.ID, "alice@example.com")

		assert.True(t, errors.Is(err, domainerrors.ErrSelfReference))
	})

	t.Run("unknown identifier", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice := newTestUser("alice")
		fx.actingAs(alice.ID)

		fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.SendRequest(ctx, alice.ID, "ghost@example.com")

		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
	})

	t.Run("malformed identifier", func(t *testing.T) {
		fx := createTestFriendshipService(t)

		_, err := fx.service.SendRequest(ctx, uuid.New(), "bob")

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("revoked session stops the request", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		fx.identity.EXPECT().CurrentUserID(ctx).Return(uuid.Nil, service.ErrIdentityRevoked)

		_, err := fx.service.SendRequest(ctx, uuid.New(), "bob@example.com")

		assert.True(t, errors.Is(err, domainerrors.ErrSessionRevoked))
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestFriendshipService_SendRequestFromQR(t *testing.T) {
	ctx := context.Background()
	fx := createTestFriendshipService(t)

	fx.qrCodes.EXPECT().ParseFriendQR("garbage").Return("", errors.New("not a friend code"))

	_, err := fx.service.SendRequestFromQR(ctx, uuid.New(), "garbage")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

// Reject then re-send brings the same row back to pending.
func TestFriendshipService_RejectThenResend(t *testing.T) {
	ctx := context.Background()
	fx := createTestFriendshipService(t)
	alice, bob := newTestUser("alice"), newTestUser("bob")
	row := &entity.Friendship{ID: uuid.New(), UserID: alice.ID, FriendID: bob.ID, Status: entity.FriendshipPending}

	fx.identity.EXPECT().CurrentUserID(mock.Anything).Return(bob.ID, nil).Times(2)
	fx.friendRepo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)
	fx.friendRepo.EXPECT().Update(ctx, row).Return(nil).Times(2)
	fx.notificationRepo.EXPECT().
		DeleteByContent(ctx, bob.ID, entity.NotificationFriendRequest, "senderId", alice.ID.String()).
		Return([]uuid.UUID{uuid.New()}, nil)

	rejected, err := fx.service.Respond(ctx, row.ID, bob.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.FriendshipRejected, rejected.Status)
	assert.Empty(t, fx.notificationsFor(alice.ID))
	assert.Len(t, fx.events(service.TopicNotifications, service.OpDelete), 1)

	fx.identity.EXPECT().CurrentUserID(mock.Anything).Return(alice.ID, nil).Times(2)
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, "bob@example.com").Return(bob, nil)
	fx.friendRepo.EXPECT().FindByPair(ctx, alice.ID, bob.ID).Return(row, nil)

	resent, err := fx.service.SendRequest(ctx, alice.ID, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, row.ID, resent.ID)
	assert.Equal(t, entity.FriendshipPending, resent.Status)
	assert.Len(t, fx.notificationsFor(bob.ID), 1)
}

func TestFriendshipService_Respond(t *testing.T) {
	ctx := context.Background()

	t.Run("accept notifies the requester", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice, bob := newTestUser("alice"), newTestUser("bob")
		fx.actingAs(bob.ID)
		row := &entity.Friendship{ID: uuid.New(), UserID: alice.ID, FriendID: bob.ID, Status: entity.FriendshipPending}

		fx.friendRepo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)
		fx.friendRepo.EXPECT().Update(ctx, row).Return(nil)
		fx.notificationRepo.EXPECT().
			DeleteByContent(ctx, bob.ID, entity.NotificationFriendRequest, "senderId", alice.ID.String()).
			Return(nil, nil)
		fx.userRepo.EXPECT().FindByID(ctx, bob.ID).Return(bob, nil)

		friendship, err := fx.service.Respond(ctx, row.ID, bob.ID, true)

		require.NoError(t, err)
		assert.Equal(t, entity.FriendshipAccepted, friendship.Status)
		notifications := fx.notificationsFor(alice.ID)
		require.Len(t, notifications, 1)
		assert.Equal(t, entity.NotificationFriendAccepted, notifications[0].Type)
	})

	t.Run("only the recipient may answer", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		alice, bob := newTestUser("alice"), newTestUser("bob")
		fx.actingAs(alice.ID)
		row := &entity.Friendship{ID: uuid.New(), UserID: alice.ID, FriendID: bob.ID, Status: entity.FriendshipPending}

		fx.friendRepo.EXPECT().FindByID(ctx, row.ID).Return(row, nil)

		_, err := fx.service.Respond(ctx, row.ID, alice.ID, true)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		assert.Empty(t, fx.published)
	})

	t.Run("unknown request", func(t *testing.T) {
		fx := createTestFriendshipService(t)
		bob := newTestUser("bob")
		fx.actingAs(bob.ID)
		id := uuid.New()

		fx.friendRepo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrFriendshipNotFound)

		_, err := fx.service.Respond(ctx, id, bob.ID, true)

		assert.True(t, errors.Is(err, domainerrors.ErrFriendshipNotFound))
	})
}

func TestFriendshipService_Remove(t *testing.T) {
	ctx := context.Background()
	fx := createTestFriendshipService(t)
	alice, bob := newTestUser("alice"), newTestUser("bob")
	fx.actingAs(alice.ID)
	row := &entity.Friendship{ID: uuid.New(), UserID: bob.ID, FriendID: alice.ID, Status: entity.FriendshipAccepted}

	fx.friendRepo.EXPECT().FindByPair(ctx, alice.ID, bob.ID).Return(row, nil)
	fx.userRepo.EXPECT().FindByID(ctx, alice.ID).Return(alice, nil)
	fx.friendRepo.EXPECT().Delete(ctx, row.ID).Return(nil)

	err := fx.service.Remove(ctx, alice.ID, bob.ID)

	require.NoError(t, err)
	notifications := fx.notificationsFor(bob.ID)
	require.Len(t, notifications, 1)
	content, ok := notifications[0].Content.(entity.FriendRemovedContent)
	require.True(t, ok)
	assert.Equal(t, "alice has removed you from their friends list.", content.Message)
	assert.Len(t, fx.events(service.TopicFriendships, service.OpDelete), 1)
}

func TestFriendshipService_ListFriends(t *testing.T) {
	ctx := context.Background()
	fx := createTestFriendshipService(t)
	me := uuid.New()
	zed, amy := newTestUser("Zed"), newTestUser("amy")
	rows := []*entity.Friendship{
		{ID: uuid.New(), UserID: me, FriendID: zed.ID, Status: entity.FriendshipAccepted},
		{ID: uuid.New(), UserID: amy.ID, FriendID: me, Status: entity.FriendshipAccepted},
	}

	fx.friendRepo.EXPECT().FindAccepted(ctx, me).Return(rows, nil)
	fx.userRepo.EXPECT().FindByIDs(ctx, []uuid.UUID{zed.ID, amy.ID}).Return([]*entity.User{zed, amy}, nil)

	friends, err := fx.service.ListFriends(ctx, me)

	require.NoError(t, err)
	require.Len(t, friends, 2)
	assert.Equal(t, "amy", friends[0].Username)
	assert.Equal(t, "Zed", friends[1].Username)
}
