package repository

import (
	"context"

	"subsplit/internal/domain/entity"

	"github.com/pkg/errors"
)

var ErrAuthNotFound = errors.New("authentication not found")

// AuthRepository stores the credentials a user can sign in with.
type AuthRepository interface {
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error
	FindAuthentication(ctx context.Context, provider entity.AuthProvider, providerUserID string) (*entity.Authentication, error)
}
