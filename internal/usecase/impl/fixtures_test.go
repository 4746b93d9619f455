package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"subsplit/config"
	"subsplit/internal/domain/entity"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	mockRepo "subsplit/internal/mocks/repository"
	mockSvc "subsplit/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(maxActiveSessions int) *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost:        12,
			MaxActiveSessions: maxActiveSessions,
		},
	}
}

// storeFixtures wires a transaction manager that runs every unit of work
// against one set of repository mocks, plus the identity and bus mocks the
// ledger services share.
type storeFixtures struct {
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	friendRepo       *mockRepo.MockFriendshipRepository
	subRepo          *mockRepo.MockSubscriptionRepository
	invitationRepo   *mockRepo.MockInvitationRepository
	notificationRepo *mockRepo.MockNotificationRepository
	paymentRepo      *mockRepo.MockPaymentRepository
	identity         *mockSvc.MockIdentityProvider
	bus              *mockSvc.MockChangeBus

	mu        sync.Mutex
	created   []*entity.Notification
	published []service.ChangeEvent
}

func newStoreFixtures(t *testing.T) *storeFixtures {
	f := &storeFixtures{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		friendRepo:       mockRepo.NewMockFriendshipRepository(t),
		subRepo:          mockRepo.NewMockSubscriptionRepository(t),
		invitationRepo:   mockRepo.NewMockInvitationRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		paymentRepo:      mockRepo.NewMockPaymentRepository(t),
		identity:         mockSvc.NewMockIdentityProvider(t),
		bus:              mockSvc.NewMockChangeBus(t),
	}

	f.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		}).Maybe()

	f.factory.EXPECT().UserRepo().Return(f.userRepo).Maybe()
	f.factory.EXPECT().AuthRepo().Return(f.authRepo).Maybe()
	f.factory.EXPECT().RefreshTokenRepo().Return(f.refreshTokenRepo).Maybe()
	f.factory.EXPECT().FriendshipRepo().Return(f.friendRepo).Maybe()
	f.factory.EXPECT().SubscriptionRepo().Return(f.subRepo).Maybe()
	f.factory.EXPECT().InvitationRepo().Return(f.invitationRepo).Maybe()
	f.factory.EXPECT().NotificationRepo().Return(f.notificationRepo).Maybe()
	f.factory.EXPECT().PaymentRepo().Return(f.paymentRepo).Maybe()

	f.notificationRepo.EXPECT().
		CreateBatch(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) error {
			f.mu.Lock()
			defer f.mu.Unlock()
			for _, n := range notifications {
				n.ID = uuid.New()
				n.CreatedAt = time.Now()
				f.created = append(f.created, n)
			}

			return nil
		}).Maybe()

	f.bus.EXPECT().
		Publish(mock.Anything).
		Run(func(events ...service.ChangeEvent) {
			f.mu.Lock()
			defer f.mu.Unlock()
			f.published = append(f.published, events...)
		}).Maybe()

	return f
}

// actingAs binds the identity mock to userID for every check.
func (f *storeFixtures) actingAs(userID uuid.UUID) {
	f.identity.EXPECT().CurrentUserID(mock.Anything).Return(userID, nil).Maybe()
}

// notificationsFor returns the notifications written for userID.
func (f *storeFixtures) notificationsFor(userID uuid.UUID) []*entity.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []*entity.Notification
	for _, n := range f.created {
		if n.UserID == userID {
			out = append(out, n)
		}
	}

	return out
}

// events returns the published events of topic and op.
func (f *storeFixtures) events(topic service.Topic, op service.ChangeOp) []service.ChangeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []service.ChangeEvent
	for _, e := range f.published {
		if e.Topic == topic && e.Op == op {
			out = append(out, e)
		}
	}

	return out
}

func newTestUser(name string) *entity.User {
	email := name + "@example.com"

	return &entity.User{ID: uuid.New(), Username: name, Email: &email}
}

func newTestMember(subscriptionID, userID uuid.UUID, share string, joined time.Time) *entity.SubscriptionMember {
	return &entity.SubscriptionMember{
		ID:             uuid.New(),
		SubscriptionID: subscriptionID,
		UserID:         userID,
		Share:          decimal.RequireFromString(share),
		CreatedAt:      joined,
	}
}

// allowShareUpdates accepts share writes and records them.
func (f *storeFixtures) allowShareUpdates() *[]entity.ShareChange {
	var written []entity.ShareChange
	f.subRepo.EXPECT().
		UpdateMemberShares(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, changes []entity.ShareChange) error {
			written = append(written, changes...)

			return nil
		}).Maybe()

	return &written
}
