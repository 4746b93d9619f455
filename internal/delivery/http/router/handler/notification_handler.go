package handler

import (
	"log/slog"
	"net/http"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotificationHandlerParams holds dependencies for NotificationHandler, injected by Fx.
type NotificationHandlerParams struct {
	fx.In

	NotificationUC usecase.NotificationUsecase
	Logger         *slog.Logger
}

// NotificationHandler serves the signed-in user's notification inbox.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler
func NewNotificationHandler(params NotificationHandlerParams) *NotificationHandler {
	return &NotificationHandler{
		uc:     params.NotificationUC,
		logger: params.Logger,
	}
}

// ListNotificationsQuery pages through notifications. Limits above the
// maximum are capped by the use case.
type ListNotificationsQuery struct {
	UnreadOnly bool `query:"unreadOnly"`
	Limit      int  `query:"limit" validate:"gte=0"`
	Offset     int  `query:"offset" validate:"gte=0"`
}

// List handles GET /notifications.
func (h *NotificationHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var query ListNotificationsQuery
	if err := bindAndValidate(c, &query); err != nil {
		return err
	}

	notifications, err := h.uc.List(c.Request().Context(), userID, &usecase.ListNotificationsInput{
		UnreadOnly: query.UnreadOnly,
		Limit:      query.Limit,
		Offset:     query.Offset,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications, "Notifications retrieved successfully")
}

// UnreadCount handles GET /notifications/unread-count.
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	count, err := h.uc.UnreadCount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Unread count retrieved successfully")
}

// MarkRead handles POST /notifications/:id/read.
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.MarkRead(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification marked as read")
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	updated, err := h.uc.MarkAllRead(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"updated": updated}, "All notifications marked as read")
}

// Delete handles DELETE /notifications/:id.
func (h *NotificationHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Notification deleted")
}

// ClearAll handles DELETE /notifications.
func (h *NotificationHandler) ClearAll(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	deleted, err := h.uc.ClearAll(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"deleted": deleted}, "Notifications cleared")
}
