package handler

import (
	"log/slog"
	"net/http"

	"subsplit/internal/delivery/http/response"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvitationHandlerParams holds dependencies for InvitationHandler, injected by Fx.
type InvitationHandlerParams struct {
	fx.In

	InvitationUC usecase.InvitationUsecase
	Logger       *slog.Logger
}

// InvitationHandler invites friends into subscriptions and answers invitations.
type InvitationHandler struct {
	invitationUC usecase.InvitationUsecase
	logger       *slog.Logger
}

// NewInvitationHandler is the constructor for InvitationHandler.
func NewInvitationHandler(params InvitationHandlerParams) *InvitationHandler {
	return &InvitationHandler{
		invitationUC: params.InvitationUC,
		logger:       params.Logger,
	}
}

// InviteRequest names the friend to invite.
type InviteRequest struct {
	UserID uuid.UUID `json:"userId" validate:"required"`
}

// Invite handles POST /subscriptions/:id/invitations.
func (h *InvitationHandler) Invite(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	subscriptionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var req InviteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	invitation, err := h.invitationUC.Invite(c.Request().Context(), subscriptionID, userID, req.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, invitation, "Invitation sent")
}

// List handles GET /invitations.
func (h *InvitationHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	invitations, err := h.invitationUC.ListInvitations(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, invitations, "Invitations retrieved successfully")
}

// Accept handles POST /invitations/:notificationId/accept.
func (h *InvitationHandler) Accept(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "notificationId")
	if err != nil {
		return err
	}

	subscription, err := h.invitationUC.AcceptInvitation(c.Request().Context(), notificationID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, subscription, "Invitation accepted")
}

// Decline handles POST /invitations/:notificationId/decline.
func (h *InvitationHandler) Decline(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	notificationID, err := uuidParam(c, "notificationId")
	if err != nil {
		return err
	}

	if err := h.invitationUC.DeclineInvitation(c.Request().Context(), notificationID, userID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Invitation declined")
}
