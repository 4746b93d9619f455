package handler

import (
	"log/slog"
	"net/http"

	"subsplit/internal/delivery/http/middleware"
	"subsplit/internal/delivery/http/response"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// ProfileHandler serves the /me routes: profile, friend QR code and sessions.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler.
func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{
		profileUC: params.ProfileUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// UpdateProfileRequest changes profile fields. Omitted fields are kept and an
// empty avatarUrl clears the avatar.
type UpdateProfileRequest struct {
	Username  *string `json:"username,omitempty" validate:"omitempty,max=64"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	AvatarURL *string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}

// GetProfile handles GET /me.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.profileUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile retrieved successfully")
}

// UpdateProfile handles PATCH /me.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdateProfileRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.profileUC.UpdateProfile(c.Request().Context(), userID, &usecase.UpdateProfileInput{
		Username:  req.Username,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, user, "Profile updated successfully")
}

// FriendQRCode handles GET /me/qrcode and returns a PNG.
func (h *ProfileHandler) FriendQRCode(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	png, err := h.profileUC.FriendQRCode(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", "inline; filename=friend-qr.png")

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListSessions handles GET /me/sessions.
func (h *ProfileHandler) ListSessions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	currentSessionID, _ := middleware.GetSessionID(c)

	sessions, err := h.sessionUC.GetActiveSessions(c.Request().Context(), userID, currentSessionID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, sessions, "Sessions retrieved successfully")
}

// RevokeSession handles DELETE /me/sessions/:id.
func (h *ProfileHandler) RevokeSession(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	sessionID, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.sessionUC.RevokeSession(c.Request().Context(), userID, sessionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]uuid.UUID{"sessionId": sessionID}, "Session revoked")
}

// RevokeAllSessions handles DELETE /me/sessions. The calling session ends too.
func (h *ProfileHandler) RevokeAllSessions(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	count, err := h.sessionUC.RevokeAllSessions(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"revoked": count}, "All sessions revoked")
}
