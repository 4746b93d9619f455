// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"strings"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	qrCodes   service.QRCodeService
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	QRCodes   service.QRCodeService
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		qrCodes:   params.QRCodes,
		logger:    params.Logger,
	}
}

// GetProfile retrieves the user profile.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	srv.logger.Debug("Getting user profile", "userID", userID)

	var user *entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		foundUser, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get user profile")
	}

	return user, nil
}

// UpdateProfile updates the provided profile fields.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.logger.Info("Updating user profile", "userID", userID)

	username, email, err := parseProfileFields(input.Username, input.Email)
	if err != nil {
		return nil, err
	}
	if input.Username != nil && username == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("username must not be blank"), "invalid profile")
	}

	var user *entity.User

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		// 1. Find the user
		foundUser, err := userRepo.FindByID(ctx, userID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}

		// 2. Update the profile fields
		if username != nil {
			foundUser.Username = *username
		}
		if email != nil {
			foundUser.Email = email
		}
		if input.AvatarURL != nil {
			// An empty URL clears the avatar.
			foundUser.AvatarURL = trimmedOrNil(input.AvatarURL)
		}

		// 3. Save the updated user
		if err := userRepo.Update(ctx, foundUser); err != nil {
			return mapNotFound(err, repository.ErrUserAlreadyExists, domainerrors.ErrUserAlreadyExists, "failed to update user profile")
		}
		user = foundUser

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// FriendQRCode renders the user's wallet address, or email when there is no
// wallet, as a PNG.
func (srv *profileService) FriendQRCode(ctx context.Context, userID uuid.UUID) ([]byte, error) {
	user, err := srv.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	identifier := user.WalletOrEmpty()
	if identifier == "" && user.Email != nil {
		identifier = strings.ToLower(*user.Email)
	}
	if identifier == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("user has no wallet or email"), "cannot build friend QR code")
	}

	png, err := srv.qrCodes.GenerateFriendQR(identifier)
	if err != nil {
		srv.logger.Error("Failed to generate friend QR code", "userID", userID, "error", err)

		return nil, errors.Wrap(err, "failed to generate friend QR code")
	}

	return png, nil
}
