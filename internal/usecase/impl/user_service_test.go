package impl

import (
	"context"
	"testing"
	"time"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	mockSvc "subsplit/internal/mocks/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	*storeFixtures
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
	sessions     *mockSvc.MockSessionRegistry
	service      *userService
}

func createTestUserService(t *testing.T, maxActiveSessions int) userServiceFixtures {
	store := newStoreFixtures(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)
	sessions := mockSvc.NewMockSessionRegistry(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    store.txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Sessions:     sessions,
		Config:       newTestConfig(maxActiveSessions),
		Logger:       newDiscardLogger(),
	}).(*userService)

	return userServiceFixtures{
		storeFixtures: store,
		hasher:        hasher,
		tokenService:  tokenService,
		sessions:      sessions,
		service:       svc,
	}
}

// expectSessionStart stubs token issuance and storage for userID.
func (fx userServiceFixtures) expectSessionStart(userID uuid.UUID) {
	fx.tokenService.EXPECT().GenerateTokens(userID, mock.AnythingOfType("uuid.UUID")).Return("access", "refresh", nil)
	fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.UserID == userID && rt.TokenHash == "refresh-hash" && rt.ID != uuid.Nil
		})).
		Return(nil)
}

func TestUserService_SignInWithWallet(t *testing.T) {
	ctx := context.Background()
	wallet := "0x52908400098527886e0f7030069857d2e4169ee7"

	t.Run("first sight creates the account", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		userID := uuid.New()
		username, email := "alice", "Alice@Example.com"

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderWallet, wallet).Return(nil, repository.ErrAuthNotFound)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
			Return(nil)
		fx.authRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == userID && a.Provider == entity.ProviderWallet && a.ProviderUserID == wallet
		})).Return(nil)
		fx.expectSessionStart(userID)

		out, err := fx.service.SignInWithWallet(ctx, &usecase.WalletSignInInput{
			WalletAddress: "0x52908400098527886E0F7030069857D2E4169EE7",
			Username:      &username,
			Email:         &email,
		})

		require.NoError(t, err)
		assert.True(t, out.IsNewUser)
		assert.Equal(t, "access", out.AccessToken)
		assert.Equal(t, "refresh", out.RefreshToken)
		assert.NotEmpty(t, out.SessionID)
		assert.Equal(t, "alice@example.com", *out.User.Email)
		assert.Equal(t, wallet, out.User.WalletOrEmpty())
	})

	t.Run("first sight needs a profile", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderWallet, wallet).Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.SignInWithWallet(ctx, &usecase.WalletSignInInput{WalletAddress: wallet})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("returning wallet updates the username", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		existing := newTestUser("old")
		username := "new"

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderWallet, wallet).
			Return(&entity.Authentication{UserID: existing.ID, Provider: entity.ProviderWallet, ProviderUserID: wallet}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)
		fx.expectSessionStart(existing.ID)

		out, err := fx.service.SignInWithWallet(ctx, &usecase.WalletSignInInput{WalletAddress: wallet, Username: &username})

		require.NoError(t, err)
		assert.False(t, out.IsNewUser)
		assert.Equal(t, "new", out.User.Username)
	})

	t.Run("returning wallet without changes skips the update", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		existing := newTestUser("alice")

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderWallet, wallet).
			Return(&entity.Authentication{UserID: existing.ID}, nil)
		fx.userRepo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
		fx.expectSessionStart(existing.ID)

		_, err := fx.service.SignInWithWallet(ctx, &usecase.WalletSignInInput{WalletAddress: wallet})

		require.NoError(t, err)
		fx.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("not a wallet", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		_, err := fx.service.SignInWithWallet(ctx, &usecase.WalletSignInInput{WalletAddress: "alice@example.com"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestUserService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates an email account", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		userID := uuid.New()

		fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "bob@example.com").Return(nil, repository.ErrAuthNotFound)
		fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, u *entity.User) { u.ID = userID }).
			Return(nil)
		fx.authRepo.EXPECT().CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.PasswordHash == "hashed" && a.Provider == entity.ProviderEmail
		})).Return(nil)
		fx.expectSessionStart(userID)

		out, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Email: "Bob@example.com", Password: "password123"})

		require.NoError(t, err)
		assert.True(t, out.IsNewUser)
		assert.Equal(t, userID, out.User.ID)
	})

	t.Run("email taken", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.hasher.EXPECT().Hash("password123").Return("hashed", nil)
		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "bob@example.com").Return(&entity.Authentication{}, nil)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "password123"})

		assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
	})

	t.Run("short password", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		_, err := fx.service.Register(ctx, &usecase.RegisterInput{Username: "bob", Email: "bob@example.com", Password: "short"})

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})
}

func TestUserService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("valid credentials", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		user := newTestUser("carol")
		auth := &entity.Authentication{UserID: user.ID, Provider: entity.ProviderEmail, PasswordHash: "hashed"}

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "carol@example.com").Return(auth, nil)
		fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.expectSessionStart(user.ID)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "carol@example.com", Password: "secret-pass"})

		require.NoError(t, err)
		assert.False(t, out.IsNewUser)
		assert.Equal(t, user, out.User)
	})

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "nobody@example.com").Return(nil, repository.ErrAuthNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "nobody@example.com", Password: "whatever"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "carol@example.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "carol@example.com", Password: "nope"})

		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("session limit", func(t *testing.T) {
		fx := createTestUserService(t, 2)
		user := newTestUser("carol")

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "carol@example.com").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, user.ID).
			Return([]*entity.RefreshToken{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "carol@example.com", Password: "secret-pass"})

		assert.True(t, errors.Is(err, domainerrors.ErrSessionLimitExceeded))
		fx.refreshTokenRepo.AssertNotCalled(t, "CreateRefreshToken", mock.Anything, mock.Anything)
	})

	t.Run("below the session limit", func(t *testing.T) {
		fx := createTestUserService(t, 2)
		user := newTestUser("carol")

		fx.authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderEmail, "carol@example.com").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("secret-pass", "hashed").Return(true)
		fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil)
		fx.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, user.ID).
			Return([]*entity.RefreshToken{{ID: uuid.New()}}, nil)
		fx.expectSessionStart(user.ID)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "carol@example.com", Password: "secret-pass"})

		require.NoError(t, err)
	})
}

func TestUserService_RefreshToken(t *testing.T) {
	ctx := context.Background()
	userID, sessionID := uuid.New(), uuid.New()
	claims := &service.Claims{UserID: userID, SessionID: sessionID, Type: service.TokenTypeRefresh}

	t.Run("issues a new access token", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.EXPECT().ValidateToken("refresh", service.TokenTypeRefresh).Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{ID: sessionID, UserID: userID}, nil)
		fx.tokenService.EXPECT().GenerateTokens(userID, sessionID).Return("new-access", "ignored", nil)

		out, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
	})

	t.Run("revoked session", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.EXPECT().ValidateToken("refresh", service.TokenTypeRefresh).Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("token of another session", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.EXPECT().ValidateToken("refresh", service.TokenTypeRefresh).Return(claims, nil)
		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{ID: uuid.New(), UserID: userID}, nil)

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("bad signature", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.EXPECT().ValidateToken("forged", service.TokenTypeRefresh).Return(nil, errors.New("signature is invalid"))

		_, err := fx.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "forged"})

		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestUserService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("ends the session", func(t *testing.T) {
		fx := createTestUserService(t, 0)
		sessionID := uuid.New()

		fx.tokenService.EXPECT().HashToken("refresh").Return("refresh-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New()}, nil)
		fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)
		fx.sessions.EXPECT().Revoke(sessionID, service.RevokeReasonLogout).Return()

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh"}))
	})

	t.Run("unknown token succeeds quietly", func(t *testing.T) {
		fx := createTestUserService(t, 0)

		fx.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByHash(ctx, "stale-hash").Return(nil, repository.ErrRefreshTokenExpired)

		require.NoError(t, fx.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
		fx.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})
}
