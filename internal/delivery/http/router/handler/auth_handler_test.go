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

func newAuthHandler(t *testing.T) (*AuthHandler, *mockusecase.MockUserUsecase) {
	uc := mockusecase.NewMockUserUsecase(t)

	return NewAuthHandler(AuthHandlerParams{UserUC: uc, Logger: newDiscardLogger()}), uc
}

func TestAuthHandler_SignInWithWallet(t *testing.T) {
	tests := []struct {
		name       string
		isNewUser  bool
		wantStatus int
	}{
		{name: "first sign-in creates the user", isNewUser: true, wantStatus: http.StatusCreated},
		{name: "returning wallet", isNewUser: false, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newAuthHandler(t)
			user := &entity.User{ID: uuid.New(), Username: "alice"}

			uc.EXPECT().SignInWithWallet(mock.Anything, mock.MatchedBy(func(in *usecase.WalletSignInInput) bool {
				return in.WalletAddress == "0xABC" && in.Username != nil && *in.Username == "alice" && in.Email == nil
			})).Return(&usecase.AuthOutput{
				AccessToken:  "access",
				RefreshToken: "refresh",
				SessionID:    "session-1",
				User:         user,
				IsNewUser:    tt.isNewUser,
			}, nil)

			rec := serve(t, route{http.MethodPost, "/auth/wallet", h.SignInWithWallet}, "/auth/wallet",
				`{"walletAddress":"0xABC","username":"alice"}`, uuid.Nil)

			require.Equal(t, tt.wantStatus, rec.Code, rec.Body.String())
			got := decodeData[AuthResponse](t, rec)
			assert.Equal(t, "access", got.AccessToken)
			assert.Equal(t, "refresh", got.RefreshToken)
			assert.Equal(t, "session-1", got.SessionID)
			assert.Equal(t, tt.isNewUser, got.IsNewUser)
			require.NotNil(t, got.User)
			assert.Equal(t, user.ID, got.User.ID)
		})
	}
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := serve(t, route{http.MethodPost, "/auth/register", h.Register}, "/auth/register",
		`{"username":"bob","email":"not-an-email","password":"short"}`, uuid.Nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "email")
	assert.Contains(t, env.Error.Details, "password")
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name       string
		ucErr      error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrong password",
			ucErr:      errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch"),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_CREDENTIALS",
		},
		{
			name:       "too many sessions",
			ucErr:      errors.Wrap(domainerrors.ErrSessionLimitExceeded, "limit reached"),
			wantStatus: http.StatusTooManyRequests,
			wantCode:   "SESSION_LIMIT_EXCEEDED",
		},
		{
			name:       "store failure",
			ucErr:      errors.New("connection refused"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, uc := newAuthHandler(t)
			uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "bob@example.com", Password: "hunter22"}).Return(nil, tt.ucErr)

			rec := serve(t, route{http.MethodPost, "/auth/login", h.Login}, "/auth/login",
				`{"email":"bob@example.com","password":"hunter22"}`, uuid.Nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			env := decode(t, rec)
			assert.False(t, env.Success)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.EXPECT().RefreshToken(mock.Anything, &usecase.RefreshTokenInput{RefreshToken: "r1"}).
		Return(&usecase.RefreshTokenOutput{AccessToken: "a2"}, nil)

	rec := serve(t, route{http.MethodPost, "/auth/refresh", h.RefreshToken}, "/auth/refresh", `{"refreshToken":"r1"}`, uuid.Nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"accessToken": "a2"}, decodeData[map[string]string](t, rec))
}

func TestAuthHandler_Logout(t *testing.T) {
	h, uc := newAuthHandler(t)
	uc.EXPECT().Logout(mock.Anything, &usecase.LogoutInput{RefreshToken: "r1"}).Return(nil)

	rec := serve(t, route{http.MethodPost, "/auth/logout", h.Logout}, "/auth/logout", `{"refreshToken":"r1"}`, uuid.Nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode(t, rec).Success)
}
