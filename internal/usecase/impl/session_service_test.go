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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionServiceFixtures struct {
	*storeFixtures
	sessions *mockSvc.MockSessionRegistry
	service  *sessionService
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	store := newStoreFixtures(t)
	sessions := mockSvc.NewMockSessionRegistry(t)

	svc := NewSessionService(SessionServiceParams{
		TxManager: store.txManager,
		Sessions:  sessions,
		Logger:    newDiscardLogger(),
	}).(*sessionService)

	return sessionServiceFixtures{storeFixtures: store, sessions: sessions, service: svc}
}

func TestSessionService_GetActiveSessions(t *testing.T) {
	ctx := context.Background()
	fx := createTestSessionService(t)
	userID, current, other := uuid.New(), uuid.New(), uuid.New()
	now := time.Now()

	fx.refreshTokenRepo.EXPECT().FindRefreshTokensByUserID(ctx, userID).Return([]*entity.RefreshToken{
		{ID: current, UserID: userID, CreatedAt: now, ExpiresAt: now.Add(time.Hour)},
		{ID: other, UserID: userID, CreatedAt: now.Add(-time.Hour), ExpiresAt: now.Add(time.Minute)},
	}, nil)

	sessions, err := fx.service.GetActiveSessions(ctx, userID, current)

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.True(t, sessions[0].Current)
	assert.False(t, sessions[1].Current)
	assert.Equal(t, other, sessions[1].ID)
}

func TestSessionService_RevokeSession(t *testing.T) {
	ctx := context.Background()

	t.Run("revokes and cancels in-flight work", func(t *testing.T) {
		fx := createTestSessionService(t)
		userID, sessionID := uuid.New(), uuid.New()

		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: userID}, nil)
		fx.refreshTokenRepo.EXPECT().DeleteRefreshToken(ctx, sessionID).Return(nil)
		fx.sessions.EXPECT().Revoke(sessionID, service.RevokeReasonRevoked).Return()

		require.NoError(t, fx.service.RevokeSession(ctx, userID, sessionID))
	})

	t.Run("another user's session", func(t *testing.T) {
		fx := createTestSessionService(t)
		sessionID := uuid.New()

		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(&entity.RefreshToken{ID: sessionID, UserID: uuid.New()}, nil)

		err := fx.service.RevokeSession(ctx, uuid.New(), sessionID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
		fx.sessions.AssertNotCalled(t, "Revoke", mock.Anything, mock.Anything)
	})

	t.Run("expired session", func(t *testing.T) {
		fx := createTestSessionService(t)
		sessionID := uuid.New()

		fx.refreshTokenRepo.EXPECT().FindRefreshTokenByID(ctx, sessionID).Return(nil, repository.ErrRefreshTokenExpired)

		err := fx.service.RevokeSession(ctx, uuid.New(), sessionID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})
}

func TestSessionService_RevokeAllSessions(t *testing.T) {
	ctx := context.Background()
	fx := createTestSessionService(t)
	userID := uuid.New()
	ids := []uuid.UUID{uuid.New(), uuid.New()}

	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, userID).Return(ids, nil)
	fx.sessions.EXPECT().Revoke(mock.Anything, service.RevokeReasonRevoked).Return().Times(2)
	fx.sessions.EXPECT().RevokeUser(userID, service.RevokeReasonRevoked).Return()

	count, err := fx.service.RevokeAllSessions(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
