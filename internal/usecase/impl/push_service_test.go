package impl

import (
	"context"
	"fmt"
	"testing"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/service"
	mockRepo "subsplit/internal/mocks/repository"
	mockSvc "subsplit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type pushServiceFixtures struct {
	deviceRepo *mockRepo.MockDeviceRepository
	pushSvc    *mockSvc.MockPushService
	service    *pushService
}

func createTestPushService(t *testing.T) pushServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	pushSvc := mockSvc.NewMockPushService(t)

	svc := NewPushService(PushServiceParams{
		DeviceRepo: deviceRepo,
		PushSvc:    pushSvc,
		Logger:     newDiscardLogger(),
	}).(*pushService)

	return pushServiceFixtures{deviceRepo: deviceRepo, pushSvc: pushSvc, service: svc}
}

func testDevices(userID uuid.UUID, n int) []*entity.UserDevice {
	devices := make([]*entity.UserDevice, 0, n)
	for i := range n {
		devices = append(devices, &entity.UserDevice{
			ID:       uuid.New(),
			UserID:   userID,
			FCMToken: fmt.Sprintf("token-%d", i),
			DeviceID: fmt.Sprintf("device-%d", i),
			Platform: "ios",
			IsActive: true,
		})
	}

	return devices
}

func testPushEvent(userID uuid.UUID) *service.PushEvent {
	return &service.PushEvent{
		NotificationID:   uuid.NewString(),
		UserID:           userID.String(),
		NotificationType: string(entity.NotificationFriendRequest),
		Title:            "New friend request",
		Body:             "alice wants to be your friend",
		Data:             map[string]string{"senderId": "abc"},
	}
}

func TestPushService_DeliverPush(t *testing.T) {
	ctx := context.Background()

	t.Run("sends to every active device", func(t *testing.T) {
		fx := createTestPushService(t)
		userID := uuid.New()
		event := testPushEvent(userID)

		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 2), nil)
		fx.pushSvc.EXPECT().
			SendBatchNotification(ctx, []string{"token-0", "token-1"}, event.Title, event.Body, mock.Anything).
			Run(func(_ context.Context, _ []string, _, _ string, data map[string]string) {
				assert.Equal(t, event.NotificationID, data["notification_id"])
				assert.Equal(t, event.NotificationType, data["notification_type"])
				assert.Equal(t, "abc", data["senderId"])
			}).
			Return(2, 0, nil, nil)

		result, err := fx.service.DeliverPush(ctx, event)

		require.NoError(t, err)
		assert.Equal(t, 2, result.Devices)
		assert.Equal(t, 2, result.SuccessCount)
	})

	t.Run("no devices", func(t *testing.T) {
		fx := createTestPushService(t)
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(nil, nil)

		result, err := fx.service.DeliverPush(ctx, testPushEvent(userID))

		require.NoError(t, err)
		assert.Zero(t, result.Devices)
	})

	t.Run("deactivates rejected tokens", func(t *testing.T) {
		fx := createTestPushService(t)
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 2), nil)
		fx.pushSvc.EXPECT().
			SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(1, 1, []string{"token-1"}, nil)
		fx.deviceRepo.EXPECT().DeactivateByFCMTokens(ctx, []string{"token-1"}).Return(int64(1), nil)

		result, err := fx.service.DeliverPush(ctx, testPushEvent(userID))

		require.NoError(t, err)
		assert.Equal(t, int64(1), result.DeactivatedDevices)
	})

	t.Run("every token rejected is not a retryable failure", func(t *testing.T) {
		fx := createTestPushService(t)
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 1), nil)
		fx.pushSvc.EXPECT().
			SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 1, []string{"token-0"}, nil)
		fx.deviceRepo.EXPECT().DeactivateByFCMTokens(ctx, []string{"token-0"}).Return(int64(1), nil)

		_, err := fx.service.DeliverPush(ctx, testPushEvent(userID))

		require.NoError(t, err)
	})

	t.Run("provider outage fails the delivery", func(t *testing.T) {
		fx := createTestPushService(t)
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, 3), nil)
		fx.pushSvc.EXPECT().
			SendBatchNotification(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(0, 0, nil, errors.New("unavailable"))

		result, err := fx.service.DeliverPush(ctx, testPushEvent(userID))

		require.Error(t, err)
		assert.Equal(t, 3, result.FailureCount)
	})

	t.Run("splits large fan-outs into batches", func(t *testing.T) {
		fx := createTestPushService(t)
		userID := uuid.New()

		fx.deviceRepo.EXPECT().FindActiveDevicesByUser(ctx, userID).Return(testDevices(userID, firebaseBatchSize+1), nil)
		fx.pushSvc.EXPECT().
			SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == firebaseBatchSize }), mock.Anything, mock.Anything, mock.Anything).
			Return(firebaseBatchSize, 0, nil, nil).Once()
		fx.pushSvc.EXPECT().
			SendBatchNotification(ctx, mock.MatchedBy(func(tokens []string) bool { return len(tokens) == 1 }), mock.Anything, mock.Anything, mock.Anything).
			Return(1, 0, nil, nil).Once()

		result, err := fx.service.DeliverPush(ctx, testPushEvent(userID))

		require.NoError(t, err)
		assert.Equal(t, firebaseBatchSize+1, result.SuccessCount)
	})

	t.Run("malformed event", func(t *testing.T) {
		fx := createTestPushService(t)

		_, err := fx.service.DeliverPush(ctx, &service.PushEvent{UserID: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}
