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

type invitationService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	bus       service.ChangeBus
	logger    *slog.Logger
}

// InvitationServiceParams holds dependencies for InvitationService, injected by Fx.
type InvitationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Bus       service.ChangeBus
	Logger    *slog.Logger
}

// NewInvitationService creates a new invitation service instance
func NewInvitationService(params InvitationServiceParams) usecase.InvitationUsecase {
	return &invitationService{
		txManager: params.TxManager,
		identity:  params.Identity,
		bus:       params.Bus,
		logger:    params.Logger,
	}
}

func (srv *invitationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Invite offers a place in the subscription to one of the owner's friends.
func (srv *invitationService) Invite(ctx context.Context, subscriptionID, inviterID, inviteeID uuid.UUID) (*entity.Invitation, error) {
	if inviteeID == inviterID {
		return nil, errors.Wrap(domainerrors.ErrSelfReference, "cannot invite yourself")
	}

	if err := checkActor(ctx, srv.identity, inviterID); err != nil {
		return nil, err
	}

	var invitation *entity.Invitation
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()
		invitationRepo := repoFactory.InvitationRepo()

		subscription, err := lockSubscription(ctx, subRepo, subscriptionID)
		if err != nil {
			return err
		}
		if !subscription.IsOwner(inviterID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can invite")
		}

		inviter, err := repoFactory.UserRepo().FindByID(ctx, inviterID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find inviter")
		}

		if err := requireFriends(ctx, repoFactory.FriendshipRepo(), inviterID, inviteeID); err != nil {
			return err
		}

		if err := ensureInvitable(ctx, subRepo, invitationRepo, subscription.ID, inviteeID); err != nil {
			return err
		}

		invitation = &entity.Invitation{
			SubscriptionID: subscription.ID,
			InviterID:      inviterID,
			InviteeID:      inviteeID,
			Status:         entity.InvitationPending,
		}
		if err := invitationRepo.Create(ctx, invitation); err != nil {
			if errors.Is(err, repository.ErrInvitationExists) {
				return errors.Wrap(domainerrors.ErrAlreadyPending, "invitation already pending")
			}

			return errors.Wrap(err, "failed to create invitation")
		}

		changes.notify(inviteeID,
			entity.SubscriptionInvitationContent{
				InvitationID:     invitation.ID,
				SubscriptionID:   subscription.ID,
				SubscriptionName: subscription.Name,
				FromUserID:       inviterID,
				FromUsername:     inviter.Username,
				Cost:             subscription.Cost,
			},
			map[string]string{
				"subscriptionId": subscription.ID.String(),
				"fromUserId":     inviterID.String(),
			},
		)
		if err := changes.flush(ctx, repoFactory.NotificationRepo()); err != nil {
			return err
		}
		invitation.NotificationID = &changes.notifications[0].ID

		changes.change(service.TopicSubscriptions, service.OpInsert, invitation.ID, &subscription.ID, inviterID, inviteeID)

		return checkActor(ctx, srv.identity, inviterID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to invite to subscription",
			slog.Any("subscriptionID", subscriptionID),
			slog.Any("inviteeID", inviteeID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute invite transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Invitation sent", slog.Any("invitationID", invitation.ID), slog.Any("inviteeID", inviteeID))

	return invitation, nil
}

func requireFriends(ctx context.Context, friendRepo repository.FriendshipRepository, a, b uuid.UUID) error {
	friendship, err := friendRepo.FindByPair(ctx, a, b)
	if errors.Is(err, repository.ErrFriendshipNotFound) {
		return errors.Wrap(domainerrors.ErrForbidden, "can only invite friends")
	}
	if err != nil {
		return errors.Wrap(err, "failed to find friendship")
	}
	if friendship.Status != entity.FriendshipAccepted {
		return errors.Wrap(domainerrors.ErrForbidden, "can only invite friends")
	}

	return nil
}

func ensureInvitable(
	ctx context.Context,
	subRepo repository.SubscriptionRepository,
	invitationRepo repository.InvitationRepository,
	subscriptionID, inviteeID uuid.UUID,
) error {
	_, err := subRepo.FindMember(ctx, subscriptionID, inviteeID)
	switch {
	case err == nil:
		return errors.Wrap(domainerrors.ErrAlreadyMember, "invitee is already a member")
	case !errors.Is(err, repository.ErrMemberNotFound):
		return errors.Wrap(err, "failed to find member")
	}

	_, err = invitationRepo.FindPending(ctx, subscriptionID, inviteeID)
	switch {
	case err == nil:
		return errors.Wrap(domainerrors.ErrAlreadyPending, "invitation already pending")
	case !errors.Is(err, repository.ErrInvitationNotFound):
		return errors.Wrap(err, "failed to find pending invitation")
	}

	return nil
}

// AcceptInvitation turns the invitation behind notificationID into membership.
func (srv *invitationService) AcceptInvitation(ctx context.Context, notificationID, userID uuid.UUID) (*entity.Subscription, error) {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return nil, err
	}

	var subscription *entity.Subscription
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		content, err := findInvitationNotification(ctx, repoFactory.NotificationRepo(), notificationID, userID)
		if err != nil {
			return err
		}

		subscription, err = lockSubscription(ctx, subRepo, content.SubscriptionID)
		if err != nil {
			return err
		}

		if err := answerInvitation(ctx, repoFactory.InvitationRepo(), content.InvitationID, userID, entity.InvitationAccepted); err != nil {
			return err
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}
		if entity.FindMember(members, userID) != nil {
			return errors.Wrap(domainerrors.ErrAlreadyMember, "already a member")
		}

		member := &entity.SubscriptionMember{
			SubscriptionID: subscription.ID,
			UserID:         userID,
		}
		if err := subRepo.CreateMember(ctx, member); err != nil {
			if errors.Is(err, repository.ErrMemberExists) {
				return errors.Wrap(domainerrors.ErrAlreadyMember, "already a member")
			}

			return errors.Wrap(err, "failed to add member")
		}
		members = append(members, member)

		if err := reshare(ctx, subRepo, subscription, members); err != nil {
			return err
		}
		subscription.Members = members

		if err := repoFactory.NotificationRepo().Delete(ctx, notificationID, userID); err != nil {
			return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to delete invitation notification")
		}
		changes.notificationsDeleted(userID, []uuid.UUID{notificationID})
		changes.change(service.TopicSubscriptions, service.OpUpdate, subscription.ID, &subscription.ID, memberUserIDs(members)...)

		return checkActor(ctx, srv.identity, userID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to accept invitation", slog.Any("notificationID", notificationID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute accept invitation transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Invitation accepted", slog.Any("subscriptionID", subscription.ID), slog.Any("userID", userID))

	return subscription, nil
}

// DeclineInvitation refuses the invitation behind notificationID.
func (srv *invitationService) DeclineInvitation(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return err
	}

	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		notificationRepo := repoFactory.NotificationRepo()

		content, err := findInvitationNotification(ctx, notificationRepo, notificationID, userID)
		if err != nil {
			return err
		}

		if err := answerInvitation(ctx, repoFactory.InvitationRepo(), content.InvitationID, userID, entity.InvitationDeclined); err != nil {
			return err
		}

		if err := notificationRepo.Delete(ctx, notificationID, userID); err != nil {
			return mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to delete invitation notification")
		}
		changes.notificationsDeleted(userID, []uuid.UUID{notificationID})
		changes.change(service.TopicSubscriptions, service.OpUpdate, content.InvitationID, &content.SubscriptionID, userID, content.FromUserID)

		return checkActor(ctx, srv.identity, userID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to decline invitation", slog.Any("notificationID", notificationID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute decline invitation transaction")
	}

	changes.publish(ctx, srv.bus)

	return nil
}

// ListInvitations returns the pending invitations addressed to userID.
func (srv *invitationService) ListInvitations(ctx context.Context, userID uuid.UUID) ([]*entity.Invitation, error) {
	var invitations []*entity.Invitation

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		invitations, err = repoFactory.InvitationRepo().FindPendingByInvitee(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list invitations")
	}

	return invitations, nil
}

// findInvitationNotification loads a subscription invitation notification
// owned by userID.
func findInvitationNotification(ctx context.Context, notificationRepo repository.NotificationRepository, notificationID, userID uuid.UUID) (entity.SubscriptionInvitationContent, error) {
	notification, err := notificationRepo.FindByID(ctx, notificationID, userID)
	if err != nil {
		return entity.SubscriptionInvitationContent{},
			mapNotFound(err, repository.ErrNotificationNotFound, domainerrors.ErrNotificationNotFound, "failed to find invitation notification")
	}

	content, ok := notification.Content.(entity.SubscriptionInvitationContent)
	if !ok {
		return entity.SubscriptionInvitationContent{},
			errors.Wrap(domainerrors.ErrNotificationNotFound, "notification is not a subscription invitation")
	}

	return content, nil
}

// answerInvitation moves the pending invitation of userID to status.
func answerInvitation(ctx context.Context, invitationRepo repository.InvitationRepository, invitationID, userID uuid.UUID, status entity.InvitationStatus) error {
	invitation, err := invitationRepo.FindByID(ctx, invitationID)
	if err != nil {
		return mapNotFound(err, repository.ErrInvitationNotFound, domainerrors.ErrInvitationNotFound, "failed to find invitation")
	}
	if invitation.InviteeID != userID || invitation.Status != entity.InvitationPending {
		return errors.Wrap(domainerrors.ErrInvitationNotFound, "invitation is no longer pending")
	}

	if err := invitationRepo.UpdateStatus(ctx, invitationID, status); err != nil {
		return mapNotFound(err, repository.ErrInvitationNotFound, domainerrors.ErrInvitationNotFound, "failed to update invitation")
	}

	return nil
}
