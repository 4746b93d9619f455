package impl

import (
	"context"
	"testing"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	mockRepo "subsplit/internal/mocks/repository"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeviceService_RegisterDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("registers a new device", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		userID := uuid.New()

		deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		deviceRepo.EXPECT().CreateDevice(ctx, mock.AnythingOfType("*entity.UserDevice")).Return(nil)

		device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{
			FCMToken: "fcm-token",
			DeviceID: "iphone-1",
			Platform: "iOS",
		})

		require.NoError(t, err)
		assert.Equal(t, "ios", device.Platform)
		assert.True(t, device.IsActive)
	})

	t.Run("refreshes the token of a known device", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		userID := uuid.New()
		existing := &entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "iphone-1", FCMToken: "old"}
		updated := &entity.UserDevice{ID: existing.ID, UserID: userID, DeviceID: "iphone-1", FCMToken: "new"}

		deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return([]*entity.UserDevice{existing}, nil)
		deviceRepo.EXPECT().UpdateFCMToken(ctx, existing.ID, "new").Return(nil)
		deviceRepo.EXPECT().FindDeviceByID(ctx, existing.ID).Return(updated, nil)

		device, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "new", DeviceID: "iphone-1", Platform: "ios"})

		require.NoError(t, err)
		assert.Equal(t, "new", device.FCMToken)
	})

	t.Run("unknown platform", func(t *testing.T) {
		svc := NewDeviceService(mockRepo.NewMockDeviceRepository(t))

		_, err := svc.RegisterDevice(ctx, uuid.New(), &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "symbian"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("duplicate device", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		userID := uuid.New()

		deviceRepo.EXPECT().FindDevicesByUser(ctx, userID).Return(nil, nil)
		deviceRepo.EXPECT().CreateDevice(ctx, mock.Anything).Return(repository.ErrDuplicateDevice)

		_, err := svc.RegisterDevice(ctx, userID, &usecase.DeviceInfo{FCMToken: "t", DeviceID: "d", Platform: "web"})

		assert.True(t, errors.Is(err, domainerrors.ErrAlreadyExists))
	})
}

func TestDeviceService_DeactivateDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("owner deactivates", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		userID := uuid.New()
		device := &entity.UserDevice{ID: uuid.New(), UserID: userID}

		deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)
		deviceRepo.EXPECT().DeleteDevice(ctx, device.ID).Return(nil)

		require.NoError(t, svc.DeactivateDevice(ctx, userID, device.ID))
	})

	t.Run("another user's device looks missing", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		device := &entity.UserDevice{ID: uuid.New(), UserID: uuid.New()}

		deviceRepo.EXPECT().FindDeviceByID(ctx, device.ID).Return(device, nil)

		err := svc.DeactivateDevice(ctx, uuid.New(), device.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})

	t.Run("unknown device", func(t *testing.T) {
		deviceRepo := mockRepo.NewMockDeviceRepository(t)
		svc := NewDeviceService(deviceRepo)
		id := uuid.New()

		deviceRepo.EXPECT().FindDeviceByID(ctx, id).Return(nil, repository.ErrDeviceNotFound)

		err := svc.UpdateFCMToken(ctx, uuid.New(), id, "token")

		assert.True(t, errors.Is(err, domainerrors.ErrDeviceNotFound))
	})
}
