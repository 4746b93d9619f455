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

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockusecase.MockProfileUsecase, *mockusecase.MockSessionUsecase) {
	profileUC := mockusecase.NewMockProfileUsecase(t)
	sessionUC := mockusecase.NewMockSessionUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, SessionUC: sessionUC, Logger: newDiscardLogger()}), profileUC, sessionUC
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	h, profileUC, _ := newProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
		return in.Username != nil && *in.Username == "carol" && in.Email == nil && in.AvatarURL == nil
	})).Return(&entity.User{ID: userID, Username: "carol"}, nil)

	rec := serve(t, route{http.MethodPatch, "/me", h.UpdateProfile}, "/me", `{"username":"carol"}`, userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "carol", decodeData[entity.User](t, rec).Username)
}

func TestProfileHandler_UpdateProfile_TakenEmail(t *testing.T) {
	h, profileUC, _ := newProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().UpdateProfile(mock.Anything, userID, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists.WithDetails("email in use"), "update profile"))

	rec := serve(t, route{http.MethodPatch, "/me", h.UpdateProfile}, "/me", `{"email":"dup@example.com"}`, userID)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	assert.Equal(t, "email in use", env.Error.Details)
}

func TestProfileHandler_FriendQRCode(t *testing.T) {
	h, profileUC, _ := newProfileHandler(t)
	userID := uuid.New()
	png := []byte("\x89PNG\r\n\x1a\nfake")

	profileUC.EXPECT().FriendQRCode(mock.Anything, userID).Return(png, nil)

	rec := serve(t, route{http.MethodGet, "/me/qrcode", h.FriendQRCode}, "/me/qrcode", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestProfileHandler_ListSessions_PassesCurrentSession(t *testing.T) {
	h, _, sessionUC := newProfileHandler(t)
	userID := uuid.New()
	now := time.Now().UTC().Truncate(time.Second)

	sessionUC.EXPECT().GetActiveSessions(mock.Anything, userID, mock.MatchedBy(func(id uuid.UUID) bool { return id != uuid.Nil })).
		Return([]*entity.SessionInfo{{ID: uuid.New(), CreatedAt: now, ExpiresAt: now.Add(time.Hour), Current: true}}, nil)

	rec := serve(t, route{http.MethodGet, "/me/sessions", h.ListSessions}, "/me/sessions", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	sessions := decodeData[[]entity.SessionInfo](t, rec)
	require.Len(t, sessions, 1)
	assert.True(t, sessions[0].Current)
}

func TestProfileHandler_RevokeSession(t *testing.T) {
	h, _, sessionUC := newProfileHandler(t)
	userID, sessionID := uuid.New(), uuid.New()

	sessionUC.EXPECT().RevokeSession(mock.Anything, userID, sessionID).Return(nil)

	rec := serve(t, route{http.MethodDelete, "/me/sessions/:id", h.RevokeSession}, "/me/sessions/"+sessionID.String(), "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]uuid.UUID{"sessionId": sessionID}, decodeData[map[string]uuid.UUID](t, rec))
}

func TestProfileHandler_RevokeAllSessions(t *testing.T) {
	h, _, sessionUC := newProfileHandler(t)
	userID := uuid.New()

	sessionUC.EXPECT().RevokeAllSessions(mock.Anything, userID).Return(3, nil)

	rec := serve(t, route{http.MethodDelete, "/me/sessions", h.RevokeAllSessions}, "/me/sessions", "", userID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]int{"revoked": 3}, decodeData[map[string]int](t, rec))
}
