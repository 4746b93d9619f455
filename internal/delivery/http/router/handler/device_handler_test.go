package handler

import (
	"net/http"
	"testing"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	mockusecase "subsplit/internal/mocks/usecase"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDeviceHandler(t *testing.T) (*DeviceHandler, *mockusecase.MockDeviceUsecase) {
	uc := mockusecase.NewMockDeviceUsecase(t)

	return NewDeviceHandler(DeviceHandlerParams{DeviceUC: uc, Logger: newDiscardLogger()}), uc
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	h, uc := newDeviceHandler(t)
	userID := uuid.New()

	uc.EXPECT().RegisterDevice(mock.Anything, userID, &usecase.DeviceInfo{FCMToken: "tok", DeviceID: "install-1", Platform: "ios"}).
		Return(&entity.UserDevice{ID: uuid.New(), UserID: userID, DeviceID: "install-1", Platform: "ios", IsActive: true}, nil)

	rec := serve(t, route{http.MethodPost, "/devices", h.RegisterDevice}, "/devices",
		`{"fcmToken":"tok","deviceId":"install-1","platform":"ios"}`, userID)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, decodeData[entity.UserDevice](t, rec).IsActive)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	h, _ := newDeviceHandler(t)

	rec := serve(t, route{http.MethodPost, "/devices", h.RegisterDevice}, "/devices",
		`{"fcmToken":"tok","deviceId":"install-1","platform":"symbian"}`, uuid.New())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "platform")
}

func TestDeviceHandler_DeactivateDevice_NotOwned(t *testing.T) {
	h, uc := newDeviceHandler(t)
	userID, deviceID := uuid.New(), uuid.New()

	uc.EXPECT().DeactivateDevice(mock.Anything, userID, deviceID).
		Return(errors.Wrap(domainerrors.ErrDeviceNotFound, "device belongs to another user"))

	rec := serve(t, route{http.MethodDelete, "/devices/:id", h.DeactivateDevice}, "/devices/"+deviceID.String(), "", userID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "DEVICE_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestDeviceHandler_UpdateFCMToken(t *testing.T) {
	h, uc := newDeviceHandler(t)
	userID, deviceID := uuid.New(), uuid.New()

	uc.EXPECT().UpdateFCMToken(mock.Anything, userID, deviceID, "fresh").Return(nil)

	rec := serve(t, route{http.MethodPut, "/devices/:id/token", h.UpdateFCMToken}, "/devices/"+deviceID.String()+"/token",
		`{"fcmToken":"fresh"}`, userID)

	assert.Equal(t, http.StatusOK, rec.Code)
}
