package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

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

type subscriptionService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	bus       service.ChangeBus
	logger    *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Bus       service.ChangeBus
	Logger    *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager: params.TxManager,
		identity:  params.Identity,
		bus:       params.Bus,
		logger:    params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create stores a subscription with its owner as the only, fully paid member.
func (srv *subscriptionService) Create(ctx context.Context, input *usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	subscription, err := buildSubscription(input)
	if err != nil {
		return nil, err
	}

	if err := checkActor(ctx, srv.identity, input.OwnerID); err != nil {
		return nil, err
	}

	changes := &changeSet{}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		if _, err := repoFactory.UserRepo().FindByID(ctx, input.OwnerID); err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find owner")
		}

		if err := subRepo.Create(ctx, subscription); err != nil {
			return errors.Wrap(err, "failed to create subscription")
		}

		owner := &entity.SubscriptionMember{
			SubscriptionID: subscription.ID,
			UserID:         input.OwnerID,
			Share:          subscription.Cost,
			Paid:           true,
		}
		if err := subRepo.CreateMember(ctx, owner); err != nil {
			return errors.Wrap(err, "failed to add owner as member")
		}
		subscription.Members = []*entity.SubscriptionMember{owner}

		changes.change(service.TopicSubscriptions, service.OpInsert, subscription.ID, &subscription.ID, input.OwnerID)

		return checkActor(ctx, srv.identity, input.OwnerID)
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create subscription", slog.Any("ownerID", input.OwnerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute create subscription transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Subscription created", slog.Any("subscriptionID", subscription.ID), slog.Any("ownerID", input.OwnerID))

	return subscription, nil
}

func buildSubscription(input *usecase.CreateSubscriptionInput) (*entity.Subscription, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "invalid subscription")
	}
	if input.Cost.IsNegative() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("cost must not be negative"), "invalid subscription")
	}
	if input.DueDate.IsZero() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("due date is required"), "invalid subscription")
	}

	cycle := input.BillingCycle
	if cycle == "" {
		cycle = entity.DefaultBillingCycle
	}
	if !cycle.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown billing cycle"), "invalid subscription")
	}

	return &entity.Subscription{
		Name:         name,
		Cost:         input.Cost.Round(entity.ShareScale),
		BillingCycle: cycle,
		DueDate:      input.DueDate,
		OwnerID:      input.OwnerID,
		LogoURL:      input.LogoURL,
	}, nil
}

// Update changes the subscription fields and re-splits shares when the cost moved.
func (srv *subscriptionService) Update(ctx context.Context, input *usecase.UpdateSubscriptionInput) (*entity.Subscription, error) {
	if err := checkActor(ctx, srv.identity, input.ActorID); err != nil {
		return nil, err
	}

	var subscription *entity.Subscription
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		var err error
		subscription, err = lockSubscription(ctx, subRepo, input.SubscriptionID)
		if err != nil {
			return err
		}
		if !subscription.IsOwner(input.ActorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can update the subscription")
		}

		costChanged, err := applySubscriptionUpdate(subscription, input)
		if err != nil {
			return err
		}

		if err := subRepo.Update(ctx, subscription); err != nil {
			return mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to update subscription")
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}
		if costChanged {
			if err := reshare(ctx, subRepo, subscription, members); err != nil {
				return err
			}
		}
		subscription.Members = members

		changes.change(service.TopicSubscriptions, service.OpUpdate, subscription.ID, &subscription.ID, memberUserIDs(members)...)

		return checkActor(ctx, srv.identity, input.ActorID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update subscription", slog.Any("subscriptionID", input.SubscriptionID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute update subscription transaction")
	}

	changes.publish(ctx, srv.bus)

	return subscription, nil
}

func applySubscriptionUpdate(subscription *entity.Subscription, input *usecase.UpdateSubscriptionInput) (bool, error) {
	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return false, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("name is required"), "invalid subscription update")
		}
		subscription.Name = name
	}

	if input.BillingCycle != nil {
		if !input.BillingCycle.IsValid() {
			return false, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("unknown billing cycle"), "invalid subscription update")
		}
		subscription.BillingCycle = *input.BillingCycle
	}

	if input.DueDate != nil {
		subscription.DueDate = *input.DueDate
	}
	if input.LogoURL != nil {
		subscription.LogoURL = input.LogoURL
	}

	costChanged := false
	if input.Cost != nil {
		if input.Cost.IsNegative() {
			return false, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("cost must not be negative"), "invalid subscription update")
		}
		cost := input.Cost.Round(entity.ShareScale)
		costChanged = !cost.Equal(subscription.Cost)
		subscription.Cost = cost
	}

	return costChanged, nil
}

// Leave removes userID from the subscription.
func (srv *subscriptionService) Leave(ctx context.Context, subscriptionID, userID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, userID); err != nil {
		return err
	}

	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()
		notificationRepo := repoFactory.NotificationRepo()

		subscription, err := lockSubscription(ctx, subRepo, subscriptionID)
		if err != nil {
			return err
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}

		leaver := entity.FindMember(members, userID)
		if leaver == nil {
			return errors.Wrap(domainerrors.ErrMemberNotFound, "user is not a member of the subscription")
		}

		ref := subscriptionRef(subscription)
		affected := memberUserIDs(members)
		remaining := withoutMember(members, userID)

		if len(remaining) == 0 {
			if err := srv.revokeInvitations(ctx, repoFactory, changes, subscription.ID, nil); err != nil {
				return err
			}
			if err := subRepo.Delete(ctx, subscription.ID); err != nil {
				return mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to delete subscription")
			}
			changes.change(service.TopicSubscriptions, service.OpDelete, subscription.ID, &subscription.ID, affected...)
		} else {
			if subscription.IsOwner(userID) {
				heir := entity.EarliestMemberExcept(members, userID)
				if err := subRepo.UpdateOwner(ctx, subscription.ID, heir.UserID); err != nil {
					return errors.Wrap(err, "failed to transfer ownership")
				}
				subscription.OwnerID = heir.UserID
			}

			if err := subRepo.DeleteMember(ctx, subscription.ID, userID); err != nil {
				return mapNotFound(err, repository.ErrMemberNotFound, domainerrors.ErrMemberNotFound, "failed to remove member")
			}
			if err := srv.revokeInvitations(ctx, repoFactory, changes, subscription.ID, &userID); err != nil {
				return err
			}
			if err := reshare(ctx, subRepo, subscription, remaining); err != nil {
				return err
			}

			leaverName := memberUsername(leaver)
			for _, m := range remaining {
				changes.notify(m.UserID,
					entity.SubscriptionMemberLeftContent{
						SubscriptionRef:       ref,
						LeavingMemberID:       userID,
						LeavingMemberUsername: leaverName,
						Message:               fmt.Sprintf("%s has left %s", leaverName, subscription.Name),
					},
					subscriptionMetadata(subscription.ID),
				)
			}
			changes.change(service.TopicSubscriptions, service.OpUpdate, subscription.ID, &subscription.ID, affected...)
		}

		changes.notify(userID,
			entity.SubscriptionLeftContent{
				SubscriptionRef: ref,
				Message:         fmt.Sprintf("You have left %s", subscription.Name),
			},
			subscriptionMetadata(subscription.ID),
		)

		if err := changes.flush(ctx, notificationRepo); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, userID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to leave subscription", slog.Any("subscriptionID", subscriptionID), slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute leave subscription transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Member left subscription", slog.Any("subscriptionID", subscriptionID), slog.Any("userID", userID))

	return nil
}

// RemoveMember lets the owner drop another member.
func (srv *subscriptionService) RemoveMember(ctx context.Context, subscriptionID, memberUserID, actorID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, actorID); err != nil {
		return err
	}

	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		subscription, err := lockSubscription(ctx, subRepo, subscriptionID)
		if err != nil {
			return err
		}
		if !subscription.IsOwner(actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can remove members")
		}
		if memberUserID == actorID {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("the owner must leave instead"), "owner cannot remove themselves")
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}

		removed := entity.FindMember(members, memberUserID)
		if removed == nil {
			return errors.Wrap(domainerrors.ErrMemberNotFound, "user is not a member of the subscription")
		}

		if err := subRepo.DeleteMember(ctx, subscription.ID, memberUserID); err != nil {
			return mapNotFound(err, repository.ErrMemberNotFound, domainerrors.ErrMemberNotFound, "failed to remove member")
		}

		remaining := withoutMember(members, memberUserID)
		if err := reshare(ctx, subRepo, subscription, remaining); err != nil {
			return err
		}

		ref := subscriptionRef(subscription)
		removedName := memberUsername(removed)
		for _, m := range remaining {
			changes.notify(m.UserID,
				entity.SubscriptionMemberRemovedContent{
					SubscriptionRef:       ref,
					RemovedMemberID:       memberUserID,
					RemovedMemberUsername: removedName,
					Message:               fmt.Sprintf("%s has been removed from %s by the owner", removedName, subscription.Name),
				},
				removalMetadata(subscription.ID, memberUserID),
			)
		}
		changes.notify(memberUserID,
			entity.SubscriptionRemovedContent{
				SubscriptionRef: ref,
				Message:         fmt.Sprintf("You have been removed from %s by the owner", subscription.Name),
			},
			subscriptionMetadata(subscription.ID),
		)
		changes.change(service.TopicSubscriptions, service.OpUpdate, subscription.ID, &subscription.ID, memberUserIDs(members)...)

		if err := changes.flush(ctx, repoFactory.NotificationRepo()); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, actorID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to remove member", slog.Any("subscriptionID", subscriptionID), slog.Any("memberUserID", memberUserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute remove member transaction")
	}

	changes.publish(ctx, srv.bus)

	return nil
}

// Delete removes the subscription after telling every member.
func (srv *subscriptionService) Delete(ctx context.Context, subscriptionID, actorID uuid.UUID) error {
	if err := checkActor(ctx, srv.identity, actorID); err != nil {
		return err
	}

	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		subscription, err := lockSubscription(ctx, subRepo, subscriptionID)
		if err != nil {
			return err
		}
		if !subscription.IsOwner(actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can delete the subscription")
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}

		ref := subscriptionRef(subscription)
		for _, m := range members {
			changes.notify(m.UserID,
				entity.SubscriptionDeletedContent{
					SubscriptionRef: ref,
					Message:         fmt.Sprintf("The subscription %s has been deleted", subscription.Name),
				},
				subscriptionMetadata(subscription.ID),
			)
		}

		if err := srv.revokeInvitations(ctx, repoFactory, changes, subscription.ID, nil); err != nil {
			return err
		}

		if err := subRepo.Delete(ctx, subscription.ID); err != nil {
			return mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to delete subscription")
		}
		changes.change(service.TopicSubscriptions, service.OpDelete, subscription.ID, &subscription.ID, memberUserIDs(members)...)

		if err := changes.flush(ctx, repoFactory.NotificationRepo()); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, actorID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete subscription", slog.Any("subscriptionID", subscriptionID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute delete subscription transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Subscription deleted", slog.Any("subscriptionID", subscriptionID))

	return nil
}

// RecalculateShares splits the cost equally over the current members.
func (srv *subscriptionService) RecalculateShares(ctx context.Context, subscriptionID, actorID uuid.UUID) ([]*entity.SubscriptionMember, error) {
	if err := checkActor(ctx, srv.identity, actorID); err != nil {
		return nil, err
	}

	var members []*entity.SubscriptionMember
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		subscription, err := lockSubscription(ctx, subRepo, subscriptionID)
		if err != nil {
			return err
		}

		members, err = subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}
		if !canView(subscription, members, actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only members can recalculate shares")
		}

		if err := reshare(ctx, subRepo, subscription, members); err != nil {
			return err
		}
		changes.change(service.TopicSubscriptions, service.OpUpdate, subscription.ID, &subscription.ID, memberUserIDs(members)...)

		return checkActor(ctx, srv.identity, actorID)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute recalculate shares transaction")
	}

	changes.publish(ctx, srv.bus)

	return members, nil
}

// GetMembers returns the members of a subscription the actor belongs to.
func (srv *subscriptionService) GetMembers(ctx context.Context, subscriptionID, actorID uuid.UUID) ([]*entity.SubscriptionMember, error) {
	subscription, err := srv.Get(ctx, subscriptionID, actorID)
	if err != nil {
		return nil, err
	}

	return subscription.Members, nil
}

// Get returns a subscription with its members to the owner or a member.
func (srv *subscriptionService) Get(ctx context.Context, subscriptionID, actorID uuid.UUID) (*entity.Subscription, error) {
	var subscription *entity.Subscription

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		var err error
		subscription, err = subRepo.FindByID(ctx, subscriptionID)
		if err != nil {
			return mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to find subscription")
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}
		if !canView(subscription, members, actorID) {
			return errors.Wrap(domainerrors.ErrForbidden, "not a member of the subscription")
		}
		subscription.Members = members

		return nil
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to get subscription")
	}

	return subscription, nil
}

// ListUserSubscriptions returns subscriptions the user owns or belongs to.
func (srv *subscriptionService) ListUserSubscriptions(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptions []*entity.Subscription

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		subscriptions, err = repoFactory.SubscriptionRepo().FindByUser(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list user subscriptions")
	}

	return subscriptions, nil
}

// revokeInvitations revokes pending invitations of the subscription, only
// those for inviteeID when set, and drops the notifications that offered them.
func (srv *subscriptionService) revokeInvitations(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	changes *changeSet,
	subscriptionID uuid.UUID,
	inviteeID *uuid.UUID,
) error {
	revoked, err := repoFactory.InvitationRepo().RevokePending(ctx, subscriptionID, inviteeID)
	if err != nil {
		return errors.Wrap(err, "failed to revoke invitations")
	}

	notificationRepo := repoFactory.NotificationRepo()
	for _, invitation := range revoked {
		if err := changes.deleteActionable(ctx, notificationRepo, invitation.InviteeID,
			entity.NotificationSubscriptionInvitation, "invitationId", invitation.ID.String()); err != nil {
			return err
		}
	}

	return nil
}

// --- Ledger helpers ---

func lockSubscription(ctx context.Context, subRepo repository.SubscriptionRepository, id uuid.UUID) (*entity.Subscription, error) {
	subscription, err := subRepo.LockByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to lock subscription")
	}

	return subscription, nil
}

// reshare splits the cost over members and persists the shares that moved.
func reshare(ctx context.Context, subRepo repository.SubscriptionRepository, subscription *entity.Subscription, members []*entity.SubscriptionMember) error {
	changes := entity.Reshare(subscription.Cost, subscription.OwnerID, members)
	if len(changes) == 0 {
		return nil
	}

	if err := subRepo.UpdateMemberShares(ctx, changes); err != nil {
		return errors.Wrap(err, "failed to update member shares")
	}
	entity.ApplyShareChanges(members, changes)

	return nil
}

func canView(subscription *entity.Subscription, members []*entity.SubscriptionMember, userID uuid.UUID) bool {
	return subscription.IsOwner(userID) || entity.FindMember(members, userID) != nil
}

func withoutMember(members []*entity.SubscriptionMember, userID uuid.UUID) []*entity.SubscriptionMember {
	remaining := make([]*entity.SubscriptionMember, 0, len(members))
	for _, m := range members {
		if m.UserID != userID {
			remaining = append(remaining, m)
		}
	}

	return remaining
}

func memberUserIDs(members []*entity.SubscriptionMember) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(members))
	for _, m := range members {
		ids = append(ids, m.UserID)
	}

	return ids
}

func memberUsername(member *entity.SubscriptionMember) string {
	if member.User != nil && member.User.Username != "" {
		return member.User.Username
	}

	return "A member"
}

func subscriptionRef(subscription *entity.Subscription) entity.SubscriptionRef {
	return entity.SubscriptionRef{
		SubscriptionID:   subscription.ID,
		SubscriptionName: subscription.Name,
	}
}

func subscriptionMetadata(subscriptionID uuid.UUID) map[string]string {
	return map[string]string{"subscriptionId": subscriptionID.String()}
}

func removalMetadata(subscriptionID, removedMemberID uuid.UUID) map[string]string {
	metadata := subscriptionMetadata(subscriptionID)
	metadata["removedMemberId"] = removedMemberID.String()

	return metadata
}
