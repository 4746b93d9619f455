package handler

import (
	"net/http"
	"testing"
	"time"

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

func newNotificationHandler(t *testing.T) (*NotificationHandler, *mockusecase.MockNotificationUsecase) {
	uc := mockusecase.NewMockNotificationUsecase(t)

	return NewNotificationHandler(NotificationHandlerParams{NotificationUC: uc, Logger: newDiscardLogger()}), uc
}

func TestNotificationHandler_List_BindsQuery(t *testing.T) {
	h, uc := newNotificationHandler(t)
	userID := uuid.New()

	uc.EXPECT().List(mock.Anything, userID, &usecase.ListNotificationsInput{UnreadOnly: true, Limit: 20, Offset: 40}).
		Return([]*entity.Notification{{
			ID:        uuid.New(),
			UserID:    userID,
			Type:      entity.NotificationFriendRemoved,
			Content:   &entity.FriendRemovedContent{SenderID: uuid.New(), SenderUsername: "bob", Message: "bob removed you"},
			CreatedAt: time.Now(),
		}}, nil)

	rec := serve(t, route{http.MethodGet, "/notifications", h.List}, "/notifications?unreadOnly=true&limit=20&offset=40", "", userID)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, string(decode(t, rec).Data), `"senderUsername":"bob"`)
}

func TestNotificationHandler_List_RejectsNegativeLimit(t *testing.T) {
	h, _ := newNotificationHandler(t)

	rec := serve(t, route{http.MethodGet, "/notifications", h.List}, "/notifications?limit=-1", "", uuid.New())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decode(t, rec).Error.Code)
}

func TestNotificationHandler_UnreadCount(t *testing.T) {
	h, uc := newNotificationHandler(t)
	userID := uuid.New()
	uc.EXPECT().UnreadCount(mock.Anything, userID).Return(int64(3), nil)

	rec := serve(t, route{http.MethodGet, "/notifications/unread-count", h.UnreadCount}, "/notifications/unread-count", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int64{"count": 3}, decodeData[map[string]int64](t, rec))
}

func TestNotificationHandler_MarkRead_OtherUsersNotification(t *testing.T) {
	h, uc := newNotificationHandler(t)
	userID, notificationID := uuid.New(), uuid.New()
	uc.EXPECT().MarkRead(mock.Anything, notificationID, userID).
		Return(errors.Wrap(domainerrors.ErrNotificationNotFound, "not the recipient"))

	rec := serve(t, route{http.MethodPost, "/notifications/:id/read", h.MarkRead}, "/notifications/"+notificationID.String()+"/read", "", userID)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "NOTIFICATION_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestNotificationHandler_Bulk(t *testing.T) {
	h, uc := newNotificationHandler(t)
	userID := uuid.New()
	uc.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(4), nil)
	uc.EXPECT().ClearAll(mock.Anything, userID).Return(int64(7), nil)

	rec := serve(t, route{http.MethodPost, "/notifications/read-all", h.MarkAllRead}, "/notifications/read-all", "", userID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int64{"updated": 4}, decodeData[map[string]int64](t, rec))

	rec = serve(t, route{http.MethodDelete, "/notifications", h.ClearAll}, "/notifications", "", userID)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int64{"deleted": 7}, decodeData[map[string]int64](t, rec))
}
