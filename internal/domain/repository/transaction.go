package repository

import "context"

// TransactionManager runs a unit of work inside one database transaction.
// The transaction is rolled back when fn returns an error or panics and
// committed otherwise.
type TransactionManager interface {
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	AuthRepo() AuthRepository
	RefreshTokenRepo() RefreshTokenRepository
	FriendshipRepo() FriendshipRepository
	SubscriptionRepo() SubscriptionRepository
	InvitationRepo() InvitationRepository
	NotificationRepo() NotificationRepository
	PaymentRepo() PaymentRepository
}
