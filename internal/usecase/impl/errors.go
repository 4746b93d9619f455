package impl

import (
	domainerrors "subsplit/internal/domain/errors"

	"github.com/pkg/errors"
)

// mapNotFound turns a repository sentinel into the matching domain error and
// wraps anything else unchanged.
func mapNotFound(err, sentinel error, domainErr *domainerrors.BaseError, message string) error {
	if errors.Is(err, sentinel) {
		return errors.Wrap(domainErr, message)
	}

	return errors.Wrap(err, message)
}
