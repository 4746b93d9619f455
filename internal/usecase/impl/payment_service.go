package impl

import (
	"context"
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

type paymentService struct {
	txManager repository.TransactionManager
	identity  service.IdentityProvider
	bus       service.ChangeBus
	logger    *slog.Logger
}

// PaymentServiceParams holds dependencies for PaymentService, injected by Fx.
type PaymentServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Identity  service.IdentityProvider
	Bus       service.ChangeBus
	Logger    *slog.Logger
}

// NewPaymentService creates a new payment service instance
func NewPaymentService(params PaymentServiceParams) usecase.PaymentUsecase {
	return &paymentService{
		txManager: params.TxManager,
		identity:  params.Identity,
		bus:       params.Bus,
		logger:    params.Logger,
	}
}

func (srv *paymentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Create records a payment from a member to another member of the same
// subscription. A payment with a transaction hash is recorded as completed.
func (srv *paymentService) Create(ctx context.Context, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	payment, err := buildPayment(input)
	if err != nil {
		return nil, err
	}

	if err := checkActor(ctx, srv.identity, payment.SenderID); err != nil {
		return nil, err
	}

	changes := &changeSet{}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		subscription, err := lockSubscription(ctx, subRepo, payment.SubscriptionID)
		if err != nil {
			return err
		}

		members, err := subRepo.FindMembers(ctx, subscription.ID)
		if err != nil {
			return errors.Wrap(err, "failed to find members")
		}
		if entity.FindMember(members, payment.SenderID) == nil {
			return errors.Wrap(domainerrors.ErrForbidden, "sender is not a member")
		}
		if entity.FindMember(members, payment.ReceiverID) == nil {
			return errors.Wrap(domainerrors.ErrMemberNotFound, "receiver is not a member")
		}

		if err := repoFactory.PaymentRepo().Create(ctx, payment); err != nil {
			return errors.Wrap(err, "failed to create payment")
		}

		if payment.Status == entity.PaymentCompleted {
			if err := srv.settle(ctx, repoFactory, subscription, payment, changes); err != nil {
				return err
			}
		}

		return checkActor(ctx, srv.identity, payment.SenderID)
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to record payment",
			slog.Any("subscriptionID", payment.SubscriptionID),
			slog.Any("senderID", payment.SenderID),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to execute create payment transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Payment recorded", slog.Any("paymentID", payment.ID), slog.String("status", string(payment.Status)))

	return payment, nil
}

func buildPayment(input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	if input == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "payment input is required")
	}
	if input.SenderID == input.ReceiverID {
		return nil, errors.Wrap(domainerrors.ErrSelfReference, "cannot pay yourself")
	}
	if !input.Amount.IsPositive() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "amount must be positive")
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	payment := &entity.Payment{
		SubscriptionID: input.SubscriptionID,
		SenderID:       input.SenderID,
		ReceiverID:     input.ReceiverID,
		Amount:         input.Amount.Round(entity.ShareScale),
		Currency:       currency,
		Status:         entity.PaymentPending,
	}
	if hash := trimmedOrNil(input.TransactionHash); hash != nil {
		payment.TransactionHash = hash
		payment.Status = entity.PaymentCompleted
	}

	return payment, nil
}

// UpdateStatus moves a payment along. Either party may mark it failed; only
// the receiver may confirm it completed.
func (srv *paymentService) UpdateStatus(
	ctx context.Context,
	paymentID, actorID uuid.UUID,
	status entity.PaymentStatus,
	transactionHash *string,
) (*entity.Payment, error) {
	if !status.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "unknown payment status")
	}

	if err := checkActor(ctx, srv.identity, actorID); err != nil {
		return nil, err
	}

	var payment *entity.Payment
	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		paymentRepo := repoFactory.PaymentRepo()

		var err error
		payment, err = paymentRepo.FindByID(ctx, paymentID)
		if err != nil {
			return mapNotFound(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to find payment")
		}

		if err := checkPaymentTransition(payment, actorID, status); err != nil {
			return err
		}

		hash := trimmedOrNil(transactionHash)
		if hash == nil {
			hash = payment.TransactionHash
		}
		if err := paymentRepo.UpdateStatus(ctx, payment.ID, status, hash); err != nil {
			return mapNotFound(err, repository.ErrPaymentNotFound, domainerrors.ErrPaymentNotFound, "failed to update payment")
		}
		payment.Status = status
		payment.TransactionHash = hash

		if status == entity.PaymentCompleted {
			subscription, err := lockSubscription(ctx, repoFactory.SubscriptionRepo(), payment.SubscriptionID)
			if err != nil {
				return err
			}
			if err := srv.settle(ctx, repoFactory, subscription, payment, changes); err != nil {
				return err
			}
		}

		return checkActor(ctx, srv.identity, actorID)
	})

	if err != nil {
		return nil, errors.Wrap(err, "failed to execute update payment transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Payment status updated", slog.Any("paymentID", paymentID), slog.String("status", string(status)))

	return payment, nil
}

func checkPaymentTransition(payment *entity.Payment, actorID uuid.UUID, status entity.PaymentStatus) error {
	if actorID != payment.SenderID && actorID != payment.ReceiverID {
		return errors.Wrap(domainerrors.ErrPaymentNotFound, "payment does not involve the actor")
	}
	if payment.Status != entity.PaymentPending {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "payment is already %s", payment.Status)
	}
	if status == entity.PaymentCompleted && actorID != payment.ReceiverID {
		return errors.Wrap(domainerrors.ErrForbidden, "only the receiver can confirm a payment")
	}

	return nil
}

// settle marks the sender's share paid and tells the receiver.
func (srv *paymentService) settle(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	subscription *entity.Subscription,
	payment *entity.Payment,
	changes *changeSet,
) error {
	err := repoFactory.SubscriptionRepo().SetMemberPaid(ctx, subscription.ID, payment.SenderID, true)
	if err != nil && !errors.Is(err, repository.ErrMemberNotFound) {
		return errors.Wrap(err, "failed to mark member paid")
	}

	sender, err := repoFactory.UserRepo().FindByID(ctx, payment.SenderID)
	if err != nil {
		return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find sender")
	}

	content := entity.PaymentReceivedContent{
		SenderInfo:      entity.SenderFrom(sender),
		SubscriptionRef: subscriptionRef(subscription),
		Amount:          payment.Amount,
	}
	if payment.TransactionHash != nil {
		content.TransactionHash = *payment.TransactionHash
	}
	changes.notify(payment.ReceiverID, content, map[string]string{
		"subscriptionId": subscription.ID.String(),
		"paymentId":      payment.ID.String(),
	})
	if err := changes.flush(ctx, repoFactory.NotificationRepo()); err != nil {
		return err
	}

	changes.change(service.TopicSubscriptions, service.OpUpdate, subscription.ID, &subscription.ID, payment.SenderID, payment.ReceiverID)

	return nil
}

// History returns the payments userID sent or received, newest first.
func (srv *paymentService) History(ctx context.Context, userID uuid.UUID) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		payments, err = repoFactory.PaymentRepo().FindByUser(ctx, userID)

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list payments")
	}

	return payments, nil
}

// SendReminder asks memberUserID to pay their current share.
func (srv *paymentService) SendReminder(ctx context.Context, subscriptionID, ownerID, memberUserID uuid.UUID) error {
	if ownerID == memberUserID {
		return errors.Wrap(domainerrors.ErrSelfReference, "cannot remind yourself")
	}

	if err := checkActor(ctx, srv.identity, ownerID); err != nil {
		return err
	}

	changes := &changeSet{}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		subRepo := repoFactory.SubscriptionRepo()

		subscription, err := subRepo.FindByID(ctx, subscriptionID)
		if err != nil {
			return mapNotFound(err, repository.ErrSubscriptionNotFound, domainerrors.ErrSubscriptionNotFound, "failed to find subscription")
		}
		if !subscription.IsOwner(ownerID) {
			return errors.Wrap(domainerrors.ErrForbidden, "only the owner can send reminders")
		}

		member, err := subRepo.FindMember(ctx, subscription.ID, memberUserID)
		if err != nil {
			return mapNotFound(err, repository.ErrMemberNotFound, domainerrors.ErrMemberNotFound, "failed to find member")
		}

		owner, err := repoFactory.UserRepo().FindByID(ctx, ownerID)
		if err != nil {
			return mapNotFound(err, repository.ErrUserNotFound, domainerrors.ErrUserNotFound, "failed to find owner")
		}

		changes.notify(memberUserID,
			entity.PaymentReminderContent{
				SenderInfo:      entity.SenderFrom(owner),
				SubscriptionRef: subscriptionRef(subscription),
				Amount:          member.Share,
			},
			subscriptionMetadata(subscription.ID),
		)
		if err := changes.flush(ctx, repoFactory.NotificationRepo()); err != nil {
			return err
		}

		return checkActor(ctx, srv.identity, ownerID)
	})

	if err != nil {
		return errors.Wrap(err, "failed to execute payment reminder transaction")
	}

	changes.publish(ctx, srv.bus)
	srv.log(ctx).Info("Payment reminder sent", slog.Any("subscriptionID", subscriptionID), slog.Any("memberUserID", memberUserID))

	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}
