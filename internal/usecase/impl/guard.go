package impl

import (
	"context"

	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// checkActor verifies that the session bound to ctx is still alive and
// belongs to actorID. Contexts that were never bound, such as background
// jobs, pass.
func checkActor(ctx context.Context, identity service.IdentityProvider, actorID uuid.UUID) error {
	if identity == nil {
		return nil
	}

	userID, err := identity.CurrentUserID(ctx)
	switch {
	case errors.Is(err, service.ErrNoIdentity):
		return nil
	case err != nil:
		return errors.Wrap(domainerrors.ErrSessionRevoked, err.Error())
	case userID != actorID:
		return errors.Wrap(domainerrors.ErrForbidden, "actor is not the signed-in user")
	}

	return nil
}
