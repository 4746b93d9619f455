package handler

import (
	"log/slog"
	"net/http"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FriendshipHandlerParams holds dependencies for FriendshipHandler, injected by Fx.
type FriendshipHandlerParams struct {
	fx.In

	FriendshipUC usecase.FriendshipUsecase
	Logger       *slog.Logger
}

// FriendshipHandler serves the /friends routes.
type FriendshipHandler struct {
	friendshipUC usecase.FriendshipUsecase
	logger       *slog.Logger
}

// NewFriendshipHandler is the constructor for FriendshipHandler.
func NewFriendshipHandler(params FriendshipHandlerParams) *FriendshipHandler {
	return &FriendshipHandler{
		friendshipUC: params.FriendshipUC,
		logger:       params.Logger,
	}
}

// SendFriendRequest addresses a user by wallet address or email.
type SendFriendRequest struct {
	Identifier string `json:"identifier" validate:"required"`
}

// RespondFriendRequest answers a pending request.
type RespondFriendRequest struct {
	Accept *bool `json:"accept" validate:"required"`
}

// ScanFriendQRRequest carries the payload read from a friend QR code.
type ScanFriendQRRequest struct {
	QRData string `json:"qrData" validate:"required"`
}

// SendRequest handles POST /friends/requests.
func (h *FriendshipHandler) SendRequest(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SendFriendRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	friendship, err := h.friendshipUC.SendRequest(c.Request().Context(), userID, req.Identifier)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, friendship, "Friend request sent")
}

// SendRequestFromQR handles POST /friends/qrcode.
func (h *FriendshipHandler) SendRequestFromQR(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req ScanFriendQRRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	friendship, err := h.friendshipUC.SendRequestFromQR(c.Request().Context(), userID, req.QRData)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, friendship, "Friend request sent")
}

// Respond handles POST /friends/requests/:id/respond.
func (h *FriendshipHandler) Respond(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requestID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req RespondFriendRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	friendship, err := h.friendshipUC.Respond(c.Request().Context(), requestID, userID, *req.Accept)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	message := "Friend request rejected"
	if *req.Accept {
		message = "Friend request accepted"
	}

	return response.Success(c, http.StatusOK, friendship, message)
}

// ListFriends handles GET /friends.
func (h *FriendshipHandler) ListFriends(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	friends, err := h.friendshipUC.ListFriends(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, friends, "Friends retrieved successfully")
}

// ListPending handles GET /friends/requests, the requests awaiting an answer.
func (h *FriendshipHandler) ListPending(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendshipUC.ListPending(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Friend requests retrieved successfully")
}

// ListSent handles GET /friends/requests/sent.
func (h *FriendshipHandler) ListSent(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	requests, err := h.friendshipUC.ListSent(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, requests, "Sent friend requests retrieved successfully")
}

// Remove handles DELETE /friends/:id.
func (h *FriendshipHandler) Remove(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	friendID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.friendshipUC.Remove(c.Request().Context(), userID, friendID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Friend removed")
}
