package impl

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

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

type friendshipService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	bus       service.ChangeBus
	qrCodes   service.QRCodeService
	logger    *slog.Logger
}

// FriendshipServiceParams holds dependencies for FriendshipService, injected by Fx.
type FriendshipServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Bus       service.ChangeBus
	QRCodes   service.QRCodeService
	Logger    *slog.Logger
}

// NewFriendshipService is the constructor for friendshipService.
func NewFriendshipService(params FriendshipServiceParams) usecase.FriendshipUsecase {
	return &friendshipService{
		txManager: params.TxManager,
		identity:  params.Identity,
		bus:       params.Bus,
		qrCodes:   params.QRCodes,
		logger:    params.Logger,
	}
}

func (srv *friendshipService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SendRequest asks the user behind identifier to become requesterID's friend.
func (srv *friendshipService) SendRequest(ctx context.Context, requesterID uuid.UUID, identifier string) (*entity.Friendship, error) {
	value, kind := entity.ParseIdentifier(identifier)
	if kind == entity.IdentifierUnknown {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails("identifier must be a wallet address or an email"),
			"invalid friend identifier",
		)
	}

	if err := checkActor(ctx, srv.identity, requesterID); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Sending friend request", slog.Any("requesterID", requesterID))

	var friendship *entity.Friendship
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()
		friendRepo := repoFactory.FriendshipRepo()

		requester, err := userRepo.FindByID(ctx, requesterID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find requester")
		}

		target, err := findUserByIdentifier(ctx, userRepo, value, kind)
		if err != nil {
			return err
		}

		if target.ID == requesterID {
			return errors.Wrap(domainerrors.ErrSelfReference, "cannot send a friend request to yourself")
		}

		var notify bool
		friendship, notify, err = srv.upsertRequest(ctx, friendRepo, requesterID, target.ID, changes)
		if err != nil {
			return err
		}

		if !notify {
			return nil
		}

		changes.notify(target.ID,
			entity.FriendRequestContent{SenderInfo: entity.SenderFrom(requester)},
			map[string]string{"senderId": requesterID.String()},
		)

		if err := changes.flush(ctx, repoFactory.NotificationRepo()); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, requesterID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to send friend request", slog.Any("requesterID", requesterID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute send friend request transaction")
	}

	changes.publish(ctx, srv.bus)

	return friendship, nil
}

// upsertRequest creates the pending row or revives a rejected one. It reports
// whether the target must be notified.
func (srv *friendshipService) upsertRequest(
	ctx context.Context,
	friendRepo repository.FriendshipRepository,
	requesterID, targetID uuid.UUID,
	changes *changeSet,
) (*entity.Friendship, bool, error) {
	existing, err := friendRepo.FindByPair(ctx, requesterID, targetID)
	if err != nil && !errors.Is(err, repository.ErrFriendshipNotFound) {
		return nil, false, errors.Wrap(err, "failed to find friendship")
	}

	if existing == nil {
		friendship := &entity.Friendship{
			UserID:   requesterID,
			FriendID: targetID,
			Status:   entity.FriendshipPending,
		}
		if err := friendRepo.Create(ctx, friendship); err != nil {
			if errors.Is(err, repository.ErrFriendshipExists) {
				return nil, false, errors.Wrap(domainerrors.ErrAlreadyPending, "friend request already exists")
			}

			return nil, false, errors.Wrap(err, "failed to create friendship")
		}
		changes.change(service.TopicFriendships, service.OpInsert, friendship.ID, nil, requesterID, targetID)

		return friendship, true, nil
	}

	switch existing.Status {
	case entity.FriendshipAccepted:
		return existing, false, nil
	case entity.FriendshipPending:
		return nil, false, errors.Wrap(domainerrors.ErrAlreadyPending, "friend request already pending")
	}

	existing.UserID = requesterID
	existing.FriendID = targetID
	existing.Status = entity.FriendshipPending
	existing.UpdatedAt = time.Now()
	if err := friendRepo.Update(ctx, existing); err != nil {
		return nil, false, errors.Wrap(err, "failed to reopen friendship")
	}
	changes.change(service.TopicFriendships, service.OpUpdate, existing.ID, nil, requesterID, targetID)

	return existing, true, nil
}

// SendRequestFromQR sends a friend request to the user encoded in payload.
func (srv *friendshipService) SendRequestFromQR(ctx context.Context, requesterID uuid.UUID, payload string) (*entity.Friendship, error) {
	identifier, err := srv.qrCodes.ParseFriendQR(payload)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unreadable friend QR code"), err.Error())
	}

	return srv.SendRequest(ctx, requesterID, identifier)
}

// Respond answers a pending request addressed to responderID.
func (srv *friendshipService) Respond(ctx context.Context, requestID, responderID uuid.UUID, accept bool) (*entity.Friendship, error) {
	if err := checkActor(ctx, srv.identity, responderID); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Responding to friend request", slog.Any("requestID", requestID), slog.Bool("accept", accept))

	var friendship *entity.Friendship
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendRepo := repoFactory.FriendshipRepo()
		notificationRepo := repoFactory.NotificationRepo()

		var err error
		friendship, err = friendRepo.FindByID(ctx, requestID)
		if err != nil {
			return mapNotFound(err, repository.ErrFriendshipNotFound, domainerrors.ErrFriendshipNotFound, "failed to find friend request")
		}

		if friendship.FriendID != responderID {
			return errors.Wrap(domainerrors.ErrForbidden, "friend request is not addressed to responder")
		}
		if friendship.Status != entity.FriendshipPending {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("friend request is not pending"), "cannot respond to friend request")
		}

		friendship.Status = entity.FriendshipRejected
		if accept {
			friendship.Status = entity.FriendshipAccepted
		}
		friendship.UpdatedAt = time.Now()
		if err := friendRepo.Update(ctx, friendship); err != nil {
			return errors.Wrap(err, "failed to update friendship")
		}
		changes.change(service.TopicFriendships, service.OpUpdate, friendship.ID, nil, friendship.UserID, friendship.FriendID)

		if err := changes.deleteActionable(ctx, notificationRepo, responderID,
			entity.NotificationFriendRequest, "senderId", friendship.UserID.String()); err != nil {
			return err
		}

		if accept {
			responder, err := repoFactory.UserRepo().FindByID(ctx, responderID)
			if err != nil {
				return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find responder")
			}

			changes.notify(friendship.UserID,
				entity.FriendAcceptedContent{SenderInfo: entity.SenderFrom(responder)},
				map[string]string{"senderId": responderID.String()},
			)
		}

		if err := changes.flush(ctx, notificationRepo); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, responderID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to respond to friend request", slog.Any("requestID", requestID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute respond friend request transaction")
	}

	changes.publish(ctx, srv.bus)

	return friendship, nil
}

// Remove deletes the friendship between userID and friendID.
func (srv *friendshipService) Remove(ctx context.Context, userID, friendID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return err
	}

	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		friendRepo := repoFactory.FriendshipRepo()
		notificationRepo := repoFactory.NotificationRepo()

		friendship, err := friendRepo.FindByPair(ctx, userID, friendID)
		if err != nil {
			return mapNotFound(err, repository.ErrFriendshipNotFound, domainerrors.ErrFriendshipNotFound, "failed to find friendship")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find user")
		}

		if err := friendRepo.Delete(ctx, friendship.ID); err != nil {
			return mapNotFound(err, repository.ErrFriendshipNotFound, domainerrors.ErrFriendshipNotFound, "failed to delete friendship")
		}
		changes.change(service.TopicFriendships, service.OpDelete, friendship.ID, nil, userID, friendID)

		if friendship.Status == entity.FriendshipPending {
			if err := changes.deleteActionable(ctx, notificationRepo, friendship.FriendID,
				entity.NotificationFriendRequest, "senderId", friendship.UserID.String()); err != nil {
				return err
			}
		}

		changes.notify(friendID,
			entity.FriendRemovedContent{
				SenderID:       userID,
				SenderUsername: user.Username,
				Message:        fmt.Sprintf("%s has removed you from their friends list.", user.Username),
			},
			map[string]string{"senderId": userID.String()},
		)

		if err := changes.flush(ctx, notificationRepo); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, userID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to remove friend", slog.Any("userID", userID), slog.Any("friendID", friendID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute remove friend transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Friend removed", slog.Any("userID", userID), slog.Any("friendID", friendID))

	return nil
}

// ListFriends returns the accepted friends of userID ordered by username.
func (srv *friendshipService) ListFriends(ctx context.Context, userID uuid.UUID) ([]*entity.User, error) {
	var friends []*entity.User

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		rows, err := repoFactory.FriendshipRepo().FindAccepted(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find accepted friendships")
		}

		ids := make([]uuid.UUID, 0, len(rows))
		for _, row := range rows {
			other := row.Other(userID)
			if !slices.Contains(ids, other) {
				ids = append(ids, other)
			}
		}

		if len(ids) == 0 {
			friends = []*entity.User{}

			return nil
		}

		friends, err = repoFactory.UserRepo().FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "failed to load friends")
		}

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to list friends")
	}

	slices.SortFunc(friends, func(a, b *entity.User) int {
		return cmp.Or(
			strings.Compare(strings.ToLower(a.Username), strings.ToLower(b.Username)),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})

	return friends, nil
}

// ListPending returns requests waiting for userID's answer, newest first.
func (srv *friendshipService) ListPending(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var requests []*entity.Friendship

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		requests, err = repoFactory.FriendshipRepo().FindPendingReceived(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list pending friend requests")
	}

	return requests, nil
}

// ListSent returns the requests userID sent that are still pending.
func (srv *friendshipService) ListSent(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var requests []*entity.Friendship

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		requests, err = repoFactory.FriendshipRepo().FindPendingSent(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list sent friend requests")
	}

	return requests, nil
}

// findUserByIdentifier looks a user up by a normalised wallet address or email.
func findUserByIdentifier(ctx context.Context, userRepo repository.UserRepository, value string, kind entity.IdentifierKind) (*entity.User, error) {
	var (
		user *entity.User
		err  error
	)

	switch kind {
	case entity.IdentifierWallet:
		user, err = userRepo.FindByWalletAddress(ctx, value)
	case entity.IdentifierEmail:
		user, err = userRepo.FindByEmail(ctx, value)
	default:
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unsupported identifier")
	}

	if err != nil {
		return nil, mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "no user matches identifier")
	}

	return user, nil
}
