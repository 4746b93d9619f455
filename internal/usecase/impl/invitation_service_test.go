package impl

import (
	"context"
	"testing"
	"time"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type invitationServiceFixtures struct {
	*storeFixtures
	service *invitationService
}

func createTestInvitationService(t *testing.T) invitationServiceFixtures {
	store := newStoreFixtures(t)

	svc := NewInvitationService(InvitationServiceParams{
		TxManager: store.txManager,
		Identity:  store.identity,
		Bus:       store.bus,
		Logger:    newDiscardLogger(),
	}).(*invitationService)

	return invitationServiceFixtures{storeFixtures: store, service: svc}
}

func soloSubscription(cost string) (*entity.Subscription, *entity.SubscriptionMember) {
	sub := &entity.Subscription{
		ID:      uuid.New(),
		Name:    "Cloud storage",
		Cost:    decimal.RequireFromString(cost),
		OwnerID: uuid.New(),
	}
	owner := newTestMember(sub.ID, sub.OwnerID, cost, time.Now().Add(-time.Hour))
	owner.Paid = true

	return sub, owner
}

func TestInvitationService_Invite(t *testing.T) {
	ctx := context.Background()

	t.Run("invites a friend and notifies them", func(t *testing.T) {
		fx := createTestInvitationService(t)
		sub, _ := soloSubscription("15.99")
		inviter := &entity.User{ID: sub.OwnerID, Username: "xavier"}
		inviteeID := uuid.New()
		fx.actingAs(inviter.ID)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
		fx.userRepo.EXPECT().FindByID(ctx, inviter.ID).Return(inviter, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, inviter.ID, inviteeID).
			Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)
		fx.subRepo.EXPECT().FindMember(ctx, sub.ID, inviteeID).Return(nil, repository.ErrMemberNotFound)
		fx.invitationRepo.EXPECT().FindPending(ctx, sub.ID, inviteeID).Return(nil, repository.ErrInvitationNotFound)
		fx.invitationRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Invitation")).
			Run(func(_ context.Context, inv *entity.Invitation) { inv.ID = uuid.New() }).
			Return(nil)

		invitation, err := fx.service.Invite(ctx, sub.ID, inviter.ID, inviteeID)

		require.NoError(t, err)
		assert.Equal(t, entity.InvitationPending, invitation.Status)

		notifications := fx.notificationsFor(inviteeID)
		require.Len(t, notifications, 1)
		require.NotNil(t, invitation.NotificationID)
		assert.Equal(t, notifications[0].ID, *invitation.NotificationID)

		content, ok := notifications[0].Content.(entity.SubscriptionInvitationContent)
		require.True(t, ok)
		assert.Equal(t, invitation.ID, content.InvitationID)
		assert.Equal(t, "xavier", content.FromUsername)
		assert.Equal(t, inviter.ID.String(), notifications[0].Metadata["fromUserId"])
		assert.Len(t, fx.events(service.TopicSubscriptions, service.OpInsert), 1)
	})

	t.Run("non-friend is forbidden", func(t *testing.T) {
		fx := createTestInvitationService(t)
		sub, _ := soloSubscription("10")
		inviter := &entity.User{ID: sub.OwnerID, Username: "xavier"}
		inviteeID := uuid.New()
		fx.actingAs(inviter.ID)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
		fx.userRepo.EXPECT().FindByID(ctx, inviter.ID).Return(inviter, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, inviter.ID, inviteeID).
			Return(&entity.Friendship{Status: entity.FriendshipPending}, nil)

		_, err := fx.service.Invite(ctx, sub.ID, inviter.ID, inviteeID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
		assert.Empty(t, fx.notificationsFor(inviteeID))
	})

	t.Run("already a member", func(t *testing.T) {
		fx := createTestInvitationService(t)
		sub, _ := soloSubscription("10")
		inviter := &entity.User{ID: sub.OwnerID, Username: "xavier"}
		inviteeID := uuid.New()
		fx.actingAs(inviter.ID)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
		fx.userRepo.EXPECT().FindByID(ctx, inviter.ID).Return(inviter, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, inviter.ID, inviteeID).
			Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)
		fx.subRepo.EXPECT().FindMember(ctx, sub.ID, inviteeID).Return(&entity.SubscriptionMember{}, nil)

		_, err := fx.service.Invite(ctx, sub.ID, inviter.ID, inviteeID)

		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyMember))
	})

	t.Run("already invited", func(t *testing.T) {
		fx := createTestInvitationService(t)
		sub, _ := soloSubscription("10")
		inviter := &entity.User{ID: sub.OwnerID, Username: "xavier"}
		inviteeID := uuid.New()
		fx.actingAs(inviter.ID)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
		fx.userRepo.EXPECT().FindByID(ctx, inviter.ID).Return(inviter, nil)
		fx.friendRepo.EXPECT().FindByPair(ctx, inviter.ID, inviteeID).
			Return(&entity.Friendship{Status: entity.FriendshipAccepted}, nil)
		fx.subRepo.EXPECT().FindMember(ctx, sub.ID, inviteeID).Return(nil, repository.ErrMemberNotFound)
		fx.invitationRepo.EXPECT().FindPending(ctx, sub.ID, inviteeID).Return(&entity.Invitation{}, nil)

		_, err := fx.service.Invite(ctx, sub.ID, inviter.ID, inviteeID)

		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyPending))
	})

	t.Run("only the owner invites", func(t *testing.T) {
		fx := createTestInvitationService(t)
		sub, _ := soloSubscription("10")
		actor := uuid.New()
		fx.actingAs(actor)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)

		_, err := fx.service.Invite(ctx, sub.ID, actor, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("self invite", func(t *testing.T) {
		fx := createTestInvitationService(t)
		id := uuid.New()

		_, err := fx.service.Invite(ctx, uuid.New(), id, id)

		assert.True(t, errors.Is(err, domainerrors.ErrSelfReference))
	})
}

// $15.99 split between the owner and the accepted invitee.
func TestInvitationService_AcceptInvitation(t *testing.T) {
	ctx := context.Background()
	fx := createTestInvitationService(t)
	sub, owner := soloSubscription("15.99")
	inviteeID := uuid.New()
	invitation := &entity.Invitation{ID: uuid.New(), SubscriptionID: sub.ID, InviterID: sub.OwnerID, InviteeID: inviteeID, Status: entity.InvitationPending}
	notification := entity.NewNotification(inviteeID, entity.SubscriptionInvitationContent{
		InvitationID:   invitation.ID,
		SubscriptionID: sub.ID,
		FromUserID:     sub.OwnerID,
	}, nil)
	notification.ID = uuid.New()
	fx.actingAs(inviteeID)
	fx.allowShareUpdates()

	fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID, inviteeID).Return(notification, nil)
	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.invitationRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
	fx.invitationRepo.EXPECT().UpdateStatus(ctx, invitation.ID, entity.InvitationAccepted).Return(nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return([]*entity.SubscriptionMember{owner}, nil)
	fx.subRepo.EXPECT().CreateMember(ctx, mock.AnythingOfType("*entity.SubscriptionMember")).
		Run(func(_ context.Context, m *entity.SubscriptionMember) {
			m.ID = uuid.New()
			m.CreatedAt = time.Now()
		}).
		Return(nil)
	fx.notificationRepo.EXPECT().Delete(ctx, notification.ID, inviteeID).Return(nil)

	got, err := fx.service.AcceptInvitation(ctx, notification.ID, inviteeID)

	require.NoError(t, err)
	require.Len(t, got.Members, 2)
	assert.Equal(t, "8.00", got.Members[0].Share.StringFixed(2))
	assert.Equal(t, "7.99", got.Members[1].Share.StringFixed(2))
	assert.Equal(t, inviteeID, got.Members[1].UserID)
	assert.True(t, entity.SumShares(got.Members).Equal(sub.Cost))
	assert.True(t, got.Members[0].Paid)
	assert.False(t, got.Members[1].Paid)

	deleted := fx.events(service.TopicNotifications, service.OpDelete)
	require.Len(t, deleted, 1)
	assert.Equal(t, notification.ID, deleted[0].RowID)
	updates := fx.events(service.TopicSubscriptions, service.OpUpdate)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Affects(sub.OwnerID))
	assert.True(t, updates[0].Affects(inviteeID))
}

func TestInvitationService_AcceptInvitation_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown notification", func(t *testing.T) {
		fx := createTestInvitationService(t)
		userID, id := uuid.New(), uuid.New()
		fx.actingAs(userID)

		fx.notificationRepo.EXPECT().FindByID(ctx, id, userID).Return(nil, repository.ErrNotificationNotFound)

		_, err := fx.service.AcceptInvitation(ctx, id, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
	})

	t.Run("not an invitation", func(t *testing.T) {
		fx := createTestInvitationService(t)
		userID := uuid.New()
		fx.actingAs(userID)
		notification := entity.NewNotification(userID, entity.FriendRequestContent{}, nil)
		notification.ID = uuid.New()

		fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID, userID).Return(notification, nil)

		_, err := fx.service.AcceptInvitation(ctx, notification.ID, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
	})

	t.Run("invitation no longer pending", func(t *testing.T) {
		fx := createTestInvitationService(t)
		sub, _ := soloSubscription("10")
		userID := uuid.New()
		fx.actingAs(userID)
		invitation := &entity.Invitation{ID: uuid.New(), SubscriptionID: sub.ID, InviteeID: userID, Status: entity.InvitationRevoked}
		notification := entity.NewNotification(userID, entity.SubscriptionInvitationContent{
			InvitationID:   invitation.ID,
			SubscriptionID: sub.ID,
		}, nil)
		notification.ID = uuid.New()

		fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID, userID).Return(notification, nil)
		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
		fx.invitationRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)

		_, err := fx.service.AcceptInvitation(ctx, notification.ID, userID)

		assert.True(t, errors.Is(err, domainerrors.ErrInvitationNotFound))
		assert.Empty(t, fx.published)
	})
}

func TestInvitationService_DeclineInvitation(t *testing.T) {
	ctx := context.Background()
	fx := createTestInvitationService(t)
	sub, _ := soloSubscription("10")
	inviteeID := uuid.New()
	invitation := &entity.Invitation{ID: uuid.New(), SubscriptionID: sub.ID, InviterID: sub.OwnerID, InviteeID: inviteeID, Status: entity.InvitationPending}
	notification := entity.NewNotification(inviteeID, entity.SubscriptionInvitationContent{
		InvitationID:   invitation.ID,
		SubscriptionID: sub.ID,
		FromUserID:     sub.OwnerID,
	}, nil)
	notification.ID = uuid.New()
	fx.actingAs(inviteeID)

	fx.notificationRepo.EXPECT().FindByID(ctx, notification.ID, inviteeID).Return(notification, nil)
	fx.invitationRepo.EXPECT().FindByID(ctx, invitation.ID).Return(invitation, nil)
	fx.invitationRepo.EXPECT().UpdateStatus(ctx, invitation.ID, entity.InvitationDeclined).Return(nil)
	fx.notificationRepo.EXPECT().Delete(ctx, notification.ID, inviteeID).Return(nil)

	err := fx.service.DeclineInvitation(ctx, notification.ID, inviteeID)

	require.NoError(t, err)
	updates := fx.events(service.TopicSubscriptions, service.OpUpdate)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Affects(sub.OwnerID))
	fx.subRepo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
}
