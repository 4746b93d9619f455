package impl

import (
	"context"
	"testing"
	"time"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	*storeFixtures
	service *subscriptionService
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	store := newStoreFixtures(t)

	svc := NewSubscriptionService(SubscriptionServiceParams{
		TxManager: store.txManager,
		Identity:  store.identity,
		Bus:       store.bus,
		Logger:    newDiscardLogger(),
	}).(*subscriptionService)

	return subscriptionServiceFixtures{storeFixtures: store, service: svc}
}

// threeWaySplit returns a $30 subscription owned by x with members x, y, z
// joined in that order at 10.00 each.
func threeWaySplit() (*entity.Subscription, []*entity.SubscriptionMember) {
	sub := &entity.Subscription{
		ID:           uuid.New(),
		Name:         "Streaming",
		Cost:         decimal.RequireFromString("30"),
		BillingCycle: entity.BillingMonthly,
		OwnerID:      uuid.New(),
	}
	joined := time.Now().Add(-time.Hour)
	members := []*entity.SubscriptionMember{
		newTestMember(sub.ID, sub.OwnerID, "10.00", joined),
		newTestMember(sub.ID, uuid.New(), "10.00", joined.Add(time.Minute)),
		newTestMember(sub.ID, uuid.New(), "10.00", joined.Add(2*time.Minute)),
	}
	members[0].Paid = true
	members[1].Paid = true
	members[2].User = &entity.User{ID: members[2].UserID, Username: "zoe"}

	return sub, members
}

func TestSubscriptionService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("owner is the only, paid member", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		owner := newTestUser("owner")
		fx.actingAs(owner.ID)

		fx.userRepo.EXPECT().FindByID(ctx, owner.ID).Return(owner, nil)
		fx.subRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Subscription")).
			Run(func(_ context.Context, s *entity.Subscription) { s.ID = uuid.New() }).
			Return(nil)
		fx.subRepo.EXPECT().CreateMember(ctx, mock.AnythingOfType("*entity.SubscriptionMember")).Return(nil)

		sub, err := fx.service.Create(ctx, &usecase.CreateSubscriptionInput{
			OwnerID: owner.ID,
			Name:    "  Music ",
			Cost:    decimal.RequireFromString("15.999"),
			DueDate: time.Now().AddDate(0, 1, 0),
		})

		require.NoError(t, err)
		assert.Equal(t, "Music", sub.Name)
		assert.Equal(t, entity.DefaultBillingCycle, sub.BillingCycle)
		assert.Equal(t, "16.00", sub.Cost.StringFixed(2))
		require.Len(t, sub.Members, 1)
		assert.True(t, sub.Members[0].Paid)
		assert.True(t, sub.Members[0].Share.Equal(sub.Cost))
		assert.Len(t, fx.events(service.TopicSubscriptions, service.OpInsert), 1)
	})

	t.Run("rejects invalid input before touching the store", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		_, err := fx.service.Create(ctx, &usecase.CreateSubscriptionInput{
			OwnerID: uuid.New(),
			Name:    "Music",
			Cost:    decimal.RequireFromString("-1"),
			DueDate: time.Now(),
		})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		fx.txManager.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
	})
}

func TestSubscriptionService_Update(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	fx.actingAs(sub.OwnerID)
	written := fx.allowShareUpdates()
	cost := decimal.RequireFromString("31")

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().Update(ctx, sub).Return(nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)

	updated, err := fx.service.Update(ctx, &usecase.UpdateSubscriptionInput{
		SubscriptionID: sub.ID,
		ActorID:        sub.OwnerID,
		Cost:           &cost,
	})

	require.NoError(t, err)
	assert.Len(t, *written, 3)
	assert.Equal(t, "10.34", updated.Members[0].Share.StringFixed(2))
	assert.Equal(t, "10.33", updated.Members[1].Share.StringFixed(2))
	assert.Equal(t, "10.33", updated.Members[2].Share.StringFixed(2))
	assert.True(t, updated.Members[0].Paid)
	assert.False(t, updated.Members[1].Paid)
	assert.True(t, entity.SumShares(updated.Members).Equal(cost))
}

func TestSubscriptionService_Update_NotOwner(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	fx.actingAs(members[1].UserID)
	name := "Mine now"

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)

	_, err := fx.service.Update(ctx, &usecase.UpdateSubscriptionInput{
		SubscriptionID: sub.ID,
		ActorID:        members[1].UserID,
		Name:           &name,
	})

	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	assert.Equal(t, "Streaming", sub.Name)
}

// Owner removes Y from a $30 split of three.
func TestSubscriptionService_RemoveMember(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	x, y, z := members[0], members[1], members[2]
	y.User = &entity.User{ID: y.UserID, Username: "yuri"}
	fx.actingAs(x.UserID)
	fx.allowShareUpdates()

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)
	fx.subRepo.EXPECT().DeleteMember(ctx, sub.ID, y.UserID).Return(nil)

	err := fx.service.RemoveMember(ctx, sub.ID, y.UserID, x.UserID)

	require.NoError(t, err)
	assert.Equal(t, "15.00", x.Share.StringFixed(2))
	assert.Equal(t, "15.00", z.Share.StringFixed(2))
	assert.True(t, x.Share.Add(z.Share).Equal(sub.Cost))

	removed := fx.notificationsFor(y.UserID)
	require.Len(t, removed, 1)
	assert.Equal(t, entity.NotificationSubscriptionRemoved, removed[0].Type)

	others := fx.notificationsFor(z.UserID)
	require.Len(t, others, 1)
	assert.Equal(t, entity.NotificationSubscriptionMemberRemoved, others[0].Type)
	assert.Equal(t, sub.ID.String(), others[0].Metadata["subscriptionId"])
	assert.Equal(t, y.UserID.String(), others[0].Metadata["removedMemberId"])
	content, ok := others[0].Content.(entity.SubscriptionMemberRemovedContent)
	require.True(t, ok)
	assert.Equal(t, y.UserID, content.RemovedMemberID)
	assert.Equal(t, "yuri", content.RemovedMemberUsername)
	assert.Equal(t, "yuri has been removed from Streaming by the owner", content.Message)

	updates := fx.events(service.TopicSubscriptions, service.OpUpdate)
	require.Len(t, updates, 1)
	assert.True(t, updates[0].Affects(y.UserID))
}

func TestSubscriptionService_RemoveMember_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("only the owner", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		sub, members := threeWaySplit()
		fx.actingAs(members[1].UserID)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)

		err := fx.service.RemoveMember(ctx, sub.ID, members[2].UserID, members[1].UserID)

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("unknown member", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		sub, members := threeWaySplit()
		fx.actingAs(sub.OwnerID)

		fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
		fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)

		err := fx.service.RemoveMember(ctx, sub.ID, uuid.New(), sub.OwnerID)

		assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
	})

	t.Run("missing subscription", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		actor := uuid.New()
		fx.actingAs(actor)
		id := uuid.New()

		fx.subRepo.EXPECT().LockByID(ctx, id).Return(nil, repository.ErrSubscriptionNotFound)

		err := fx.service.RemoveMember(ctx, id, uuid.New(), actor)

		assert.True(t, errors.Is(err, domainerrors.ErrSubscriptionNotFound))
	})
}

// The owner leaving hands ownership to the earliest remaining member.
func TestSubscriptionService_Leave_OwnerTransfersOwnership(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	x, y, z := members[0], members[1], members[2]
	x.User = &entity.User{ID: x.UserID, Username: "xena"}
	fx.actingAs(x.UserID)
	fx.allowShareUpdates()

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)
	fx.subRepo.EXPECT().UpdateOwner(ctx, sub.ID, y.UserID).Return(nil)
	fx.subRepo.EXPECT().DeleteMember(ctx, sub.ID, x.UserID).Return(nil)
	fx.invitationRepo.EXPECT().RevokePending(ctx, sub.ID, &x.UserID).Return(nil, nil)

	err := fx.service.Leave(ctx, sub.ID, x.UserID)

	require.NoError(t, err)
	assert.Equal(t, y.UserID, sub.OwnerID)
	assert.Equal(t, "15.00", y.Share.StringFixed(2))
	assert.Equal(t, "15.00", z.Share.StringFixed(2))
	assert.True(t, y.Paid)
	assert.False(t, z.Paid)

	left := fx.notificationsFor(x.UserID)
	require.Len(t, left, 1)
	assert.Equal(t, entity.NotificationSubscriptionLeft, left[0].Type)

	for _, m := range []*entity.SubscriptionMember{y, z} {
		got := fx.notificationsFor(m.UserID)
		require.Len(t, got, 1)
		assert.Equal(t, entity.NotificationSubscriptionMemberLeft, got[0].Type)
		content, ok := got[0].Content.(entity.SubscriptionMemberLeftContent)
		require.True(t, ok)
		assert.Equal(t, x.UserID, content.LeavingMemberID)
		assert.Equal(t, "xena", content.LeavingMemberUsername)
	}
}

// The last member leaving deletes the subscription.
func TestSubscriptionService_Leave_LastMember(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	owner := members[0]
	fx.actingAs(owner.UserID)
	invitation := &entity.Invitation{ID: uuid.New(), SubscriptionID: sub.ID, InviteeID: uuid.New()}

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members[:1], nil)
	fx.invitationRepo.EXPECT().RevokePending(ctx, sub.ID, (*uuid.UUID)(nil)).Return([]*entity.Invitation{invitation}, nil)
	fx.notificationRepo.EXPECT().
		DeleteByContent(ctx, invitation.InviteeID, entity.NotificationSubscriptionInvitation, "invitationId", invitation.ID.String()).
		Return([]uuid.UUID{uuid.New()}, nil)
	fx.subRepo.EXPECT().Delete(ctx, sub.ID).Return(nil)

	err := fx.service.Leave(ctx, sub.ID, owner.UserID)

	require.NoError(t, err)
	assert.Len(t, fx.events(service.TopicSubscriptions, service.OpDelete), 1)
	assert.Len(t, fx.events(service.TopicNotifications, service.OpDelete), 1)
	assert.Len(t, fx.notificationsFor(owner.UserID), 1)
	fx.subRepo.AssertNotCalled(t, "DeleteMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionService_Leave_NotMember(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	stranger := uuid.New()
	fx.actingAs(stranger)

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)

	err := fx.service.Leave(ctx, sub.ID, stranger)

	assert.True(t, errors.Is(err, domainerrors.ErrMemberNotFound))
	assert.Empty(t, fx.published)
}

func TestSubscriptionService_Delete(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	fx.actingAs(sub.OwnerID)

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)
	fx.invitationRepo.EXPECT().RevokePending(ctx, sub.ID, (*uuid.UUID)(nil)).Return(nil, nil)
	fx.subRepo.EXPECT().Delete(ctx, sub.ID).Return(nil)

	err := fx.service.Delete(ctx, sub.ID, sub.OwnerID)

	require.NoError(t, err)
	for _, m := range members {
		got := fx.notificationsFor(m.UserID)
		require.Len(t, got, 1)
		assert.Equal(t, entity.NotificationSubscriptionDeleted, got[0].Type)
	}
	deletes := fx.events(service.TopicSubscriptions, service.OpDelete)
	require.Len(t, deletes, 1)
	assert.Len(t, deletes[0].UserIDs, 3)
}

func TestSubscriptionService_GetMembers(t *testing.T) {
	ctx := context.Background()

	t.Run("member sees everyone", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		sub, members := threeWaySplit()

		fx.subRepo.EXPECT().FindByID(ctx, sub.ID).Return(sub, nil)
		fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)

		got, err := fx.service.GetMembers(ctx, sub.ID, members[2].UserID)

		require.NoError(t, err)
		assert.Len(t, got, 3)
	})

	t.Run("outsider is forbidden", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		sub, members := threeWaySplit()

		fx.subRepo.EXPECT().FindByID(ctx, sub.ID).Return(sub, nil)
		fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)

		_, err := fx.service.GetMembers(ctx, sub.ID, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})
}

func TestSubscriptionService_RecalculateShares(t *testing.T) {
	ctx := context.Background()
	fx := createTestSubscriptionService(t)
	sub, members := threeWaySplit()
	members[1].Share = decimal.RequireFromString("12.00")
	fx.actingAs(members[1].UserID)
	written := fx.allowShareUpdates()

	fx.subRepo.EXPECT().LockByID(ctx, sub.ID).Return(sub, nil)
	fx.subRepo.EXPECT().FindMembers(ctx, sub.ID).Return(members, nil)

	got, err := fx.service.RecalculateShares(ctx, sub.ID, members[1].UserID)

	require.NoError(t, err)
	require.Len(t, *written, 1)
	assert.Equal(t, members[1].ID, (*written)[0].MemberID)
	assert.False(t, (*written)[0].Paid)
	assert.True(t, entity.SumShares(got).Equal(sub.Cost))
}
