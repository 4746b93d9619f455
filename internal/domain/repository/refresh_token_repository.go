package repository

import (
	"context"
	"time"

	"subsplit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token expired")
)

// RefreshTokenRepository persists sign-in sessions.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error
	// FindRefreshTokenByHash returns ErrRefreshTokenExpired for a stored but expired token.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)
	FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)
	FindRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.RefreshToken, error)
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error
	// DeleteRefreshTokensByUserID removes every session of the user and returns their ids.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
	// DeleteExpiredRefreshTokens removes sessions that expired before cutoff and returns their ids.
	DeleteExpiredRefreshTokens(ctx context.Context, cutoff time.Time) ([]uuid.UUID, error)
}
