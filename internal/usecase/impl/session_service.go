// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "subsplit/internal/delivery/context"
	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager repository.TransactionManager
	sessions  service.SessionRegistry
	logger    *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Sessions  service.SessionRegistry
	Logger    *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return &sessionService{
		txManager: params.TxManager,
		sessions:  params.Sessions,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetActiveSessions retrieves all unexpired sessions for a user, newest first.
func (srv *sessionService) GetActiveSessions(ctx context.Context, userID, currentSessionID uuid.UUID) ([]*entity.SessionInfo, error) {
	srv.log(ctx).Debug("Getting active sessions", slog.Any("user_id", userID))

	var tokens []*entity.RefreshToken

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		tokens, err = repoFactory.RefreshTokenRepo().FindRefreshTokensByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find refresh tokens")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to get active sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to get active sessions")
	}

	sessions := make([]*entity.SessionInfo, 0, len(tokens))
	for _, token := range tokens {
		sessions = append(sessions, &entity.SessionInfo{
			ID:        token.ID,
			CreatedAt: token.CreatedAt,
			ExpiresAt: token.ExpiresAt,
			Current:   token.ID == currentSessionID,
		})
	}

	return sessions, nil
}

// RevokeSession ends one session of userID and cancels its in-flight requests.
func (srv *sessionService) RevokeSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	srv.log(ctx).Info("Revoking session", slog.Any("user_id", userID), slog.Any("session_id", sessionID))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		refreshRepo := repoFactory.RefreshTokenRepo()

		token, err := refreshRepo.FindRefreshTokenByID(ctx, sessionID)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
			return errors.Wrap(domainerrors.ErrNotFound, "session not found")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find session")
		}

		// Another user's session looks the same as a missing one.
		if token.UserID != userID {
			return errors.Wrap(domainerrors.ErrNotFound, "session not found")
		}

		if err := refreshRepo.DeleteRefreshToken(ctx, sessionID); err != nil {
			return errors.Wrap(err, "failed to delete session")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to revoke session", slog.Any("error", err), slog.Any("session_id", sessionID))

		return errors.Wrap(err, "failed to revoke session")
	}

	srv.sessions.Revoke(sessionID, service.RevokeReasonRevoked)

	return nil
}

// RevokeAllSessions ends every session of userID, the calling one included.
func (srv *sessionService) RevokeAllSessions(ctx context.Context, userID uuid.UUID) (int, error) {
	var revoked []uuid.UUID

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		revoked, err = repoFactory.RefreshTokenRepo().DeleteRefreshTokensByUserID(ctx, userID)

		return err
	})

	if err != nil {
		srv.log(ctx).Error("Failed to revoke all sessions", slog.Any("error", err), slog.Any("user_id", userID))

		return 0, errors.Wrap(err, "failed to revoke all sessions")
	}

	for _, sessionID := range revoked {
		srv.sessions.Revoke(sessionID, service.RevokeReasonRevoked)
	}
	srv.sessions.RevokeUser(userID, service.RevokeReasonRevoked)
	srv.log(ctx).Info("Revoked all sessions", slog.Any("user_id", userID), slog.Int("count", len(revoked)))

	return len(revoked), nil
}
