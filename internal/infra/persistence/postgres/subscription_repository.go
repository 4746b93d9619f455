package postgres

import (
	"context"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription. Member rows are written separately.
func (repo *subscriptionRepository) Create(ctx context.Context, subscription *entity.Subscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Members").Create(subscriptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("cost must not be negative")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required subscription information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription")
	}

	subscription.ID = subscriptionM.ID
	subscription.CreatedAt = subscriptionM.CreatedAt
	subscription.UpdatedAt = subscriptionM.UpdatedAt

	return nil
}

// FindByID retrieves a subscription by its unique ID without members.
func (repo *subscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx), id)
}

// LockByID retrieves a subscription and takes a FOR UPDATE lock on its row.
func (repo *subscriptionRepository) LockByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error) {
	return repo.findOne(ctx, repo.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (repo *subscriptionRepository) findOne(_ context.Context, db *gorm.DB, id uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := db.Where("id = ?", id).First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// Update writes the editable fields of a subscription.
func (repo *subscriptionRepository) Update(ctx context.Context, subscription *entity.Subscription) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", subscription.ID).
		Updates(map[string]any{
			"name":          subscription.Name,
			"cost":          subscription.Cost,
			"billing_cycle": string(subscription.BillingCycle),
			"due_date":      subscription.DueDate,
			"logo_url":      subscription.LogoURL,
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WithDetails("cost must not be negative")
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// UpdateOwner hands the subscription to ownerID.
func (repo *subscriptionRepository) UpdateOwner(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionModel{}).
		Where("id = ?", id).
		Update("owner_id", ownerID)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update subscription owner")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// Delete removes the subscription; member rows follow through the cascade.
func (repo *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Where("subscription_id = ?", id).Delete(&model.SubscriptionMemberModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete subscription members")
	}

	result := db.Where("id = ?", id).Delete(&model.SubscriptionModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// FindByUser returns subscriptions owned by userID or shared with them, newest
// first, each with its members in join order.
func (repo *subscriptionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Subscription, error) {
	var subscriptionModels []*model.SubscriptionModel

	memberOf := repo.db.Model(&model.SubscriptionMemberModel{}).
		Select("subscription_id").
		Where("user_id = ?", userID)

	if err := repo.db.WithContext(ctx).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("subscription_members.created_at ASC")
		}).
		Preload("Members.User").
		Where("owner_id = ? OR id IN (?)", userID, memberOf).
		Order("created_at DESC").
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscriptions by user")
	}

	subscriptions := make([]*entity.Subscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// CreateMember adds a member row. A second row for the same user yields ErrMemberExists.
func (repo *subscriptionRepository) CreateMember(ctx context.Context, member *entity.SubscriptionMember) error {
	memberM := fromMemberDomain(member)

	if err := repo.db.WithContext(ctx).Omit("User").Create(memberM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrMemberExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create subscription member")
	}

	member.ID = memberM.ID
	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// FindMembers returns the members of a subscription in join order.
func (repo *subscriptionRepository) FindMembers(ctx context.Context, subscriptionID uuid.UUID) ([]*entity.SubscriptionMember, error) {
	var memberModels []*model.SubscriptionMemberModel

	if err := repo.db.WithContext(ctx).
		Preload("User").
		Where("subscription_id = ?", subscriptionID).
		Order("created_at ASC").
		Find(&memberModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find subscription members")
	}

	members := make([]*entity.SubscriptionMember, 0, len(memberModels))
	for _, memberM := range memberModels {
		members = append(members, toMemberDomain(memberM))
	}

	return members, nil
}

// FindMember retrieves one member row.
func (repo *subscriptionRepository) FindMember(ctx context.Context, subscriptionID, userID uuid.UUID) (*entity.SubscriptionMember, error) {
	var memberM model.SubscriptionMemberModel

	if err := repo.db.WithContext(ctx).
		Where("subscription_id = ? AND user_id = ?", subscriptionID, userID).
		First(&memberM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription member")
	}

	return toMemberDomain(&memberM), nil
}

// UpdateMemberShares writes the share and paid flag of each changed member.
func (repo *subscriptionRepository) UpdateMemberShares(ctx context.Context, changes []entity.ShareChange) error {
	db := repo.db.WithContext(ctx)

	for _, change := range changes {
		result := db.Model(&model.SubscriptionMemberModel{}).
			Where("id = ?", change.MemberID).
			Updates(map[string]any{
				"share": change.Share,
				"paid":  change.Paid,
			})

		if result.Error != nil {
			return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member share")
		}

		if result.RowsAffected == 0 {
			return repository.ErrMemberNotFound
		}
	}

	return nil
}

// SetMemberPaid flips the paid flag of one member.
func (repo *subscriptionRepository) SetMemberPaid(ctx context.Context, subscriptionID, userID uuid.UUID, paid bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SubscriptionMemberModel{}).
		Where("subscription_id = ? AND user_id = ?", subscriptionID, userID).
		Update("paid", paid)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update member paid flag")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// DeleteMember removes a member row.
func (repo *subscriptionRepository) DeleteMember(ctx context.Context, subscriptionID, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("subscription_id = ? AND user_id = ?", subscriptionID, userID).
		Delete(&model.SubscriptionMemberModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete subscription member")
	}

	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM SubscriptionModel to a domain Subscription entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	var members []*entity.SubscriptionMember
	if len(data.Members) > 0 {
		members = make([]*entity.SubscriptionMember, 0, len(data.Members))
		for i := range data.Members {
			members = append(members, toMemberDomain(&data.Members[i]))
		}
	}

	return &entity.Subscription{
		ID:           data.ID,
		Name:         data.Name,
		Cost:         data.Cost,
		BillingCycle: entity.BillingCycle(data.BillingCycle),
		DueDate:      data.DueDate,
		OwnerID:      data.OwnerID,
		LogoURL:      data.LogoURL,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Members:      members,
	}
}

// fromSubscriptionDomain converts a domain Subscription entity to a GORM SubscriptionModel.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:           data.ID,
		Name:         data.Name,
		Cost:         data.Cost,
		BillingCycle: string(data.BillingCycle),
		DueDate:      data.DueDate,
		OwnerID:      data.OwnerID,
		LogoURL:      data.LogoURL,
	}
}

func toMemberDomain(data *model.SubscriptionMemberModel) *entity.SubscriptionMember {
	if data == nil {
		return nil
	}

	return &entity.SubscriptionMember{
		ID:             data.ID,
		SubscriptionID: data.SubscriptionID,
		UserID:         data.UserID,
		Share:          data.Share,
		Paid:           data.Paid,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
		User:           toUserDomain(data.User),
	}
}

func fromMemberDomain(data *entity.SubscriptionMember) *model.SubscriptionMemberModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionMemberModel{
		ID:             data.ID,
		SubscriptionID: data.SubscriptionID,
		UserID:         data.UserID,
		Share:          data.Share,
		Paid:           data.Paid,
	}
}
