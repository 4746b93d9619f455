package postgres

import (
	"context"
	"time"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// friendshipRepository implements the domain.FriendshipRepository interface.
type friendshipRepository struct {
	db *gorm.DB
}

// NewFriendshipRepository is the constructor for friendshipRepository.
func NewFriendshipRepository(db *gorm.DB) repository.FriendshipRepository {
	return &friendshipRepository{
		db: db,
	}
}

// Create inserts a new row for the pair. A row for the same unordered pair
// yields ErrFriendshipExists.
func (repo *friendshipRepository) Create(ctx context.Context, friendship *entity.Friendship) error {
	friendshipM := fromFriendshipDomain(friendship)

	if err := repo.db.WithContext(ctx).Omit("Requester", "Recipient").Create(friendshipM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrFriendshipExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrSelfReference
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create friendship")
	}

	friendship.ID = friendshipM.ID
	friendship.CreatedAt = friendshipM.CreatedAt
	friendship.UpdatedAt = friendshipM.UpdatedAt

	return nil
}

// FindByID retrieves a friendship row by its unique ID.
func (repo *friendshipRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Friendship, error) {
	var friendshipM model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&friendshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship by id")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// FindByPair retrieves the row for the unordered pair {a, b}.
func (repo *friendshipRepository) FindByPair(ctx context.Context, a, b uuid.UUID) (*entity.Friendship, error) {
	low, high := entity.OrderedPair(a, b)

	var friendshipM model.FriendshipModel
	if err := repo.db.WithContext(ctx).
		Where("pair_low = ? AND pair_high = ?", low, high).
		First(&friendshipM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrFriendshipNotFound
		}

		return nil, errors.Wrap(err, "failed to find friendship by pair")
	}

	return toFriendshipDomain(&friendshipM), nil
}

// Update rewrites direction and status of an existing row. The pair columns
// never change since the pair itself is fixed.
func (repo *friendshipRepository) Update(ctx context.Context, friendship *entity.Friendship) error {
	if friendship.UpdatedAt.IsZero() {
		friendship.UpdatedAt = time.Now()
	}

	result := repo.db.WithContext(ctx).
		Model(&model.FriendshipModel{}).
		Where("id = ?", friendship.ID).
		Updates(map[string]any{
			"user_id":    friendship.UserID,
			"friend_id":  friendship.FriendID,
			"status":     string(friendship.Status),
			"updated_at": friendship.UpdatedAt,
		})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update friendship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// Delete removes a friendship row by ID.
func (repo *friendshipRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.FriendshipModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete friendship")
	}

	if result.RowsAffected == 0 {
		return repository.ErrFriendshipNotFound
	}

	return nil
}

// FindAccepted returns accepted rows in which userID takes either side.
func (repo *friendshipRepository) FindAccepted(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("(user_id = ? OR friend_id = ?) AND status = ?", userID, userID, string(entity.FriendshipAccepted)).
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find accepted friendships")
	}

	return toFriendshipDomains(friendshipModels), nil
}

// FindPendingReceived returns pending requests addressed to userID, newest first.
func (repo *friendshipRepository) FindPendingReceived(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Preload("Requester").
		Where("friend_id = ? AND status = ?", userID, string(entity.FriendshipPending)).
		Order("created_at DESC").
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find received friend requests")
	}

	return toFriendshipDomains(friendshipModels), nil
}

// FindPendingSent returns pending requests sent by userID, newest first.
func (repo *friendshipRepository) FindPendingSent(ctx context.Context, userID uuid.UUID) ([]*entity.Friendship, error) {
	var friendshipModels []*model.FriendshipModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, string(entity.FriendshipPending)).
		Order("created_at DESC").
		Find(&friendshipModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find sent friend requests")
	}

	return toFriendshipDomains(friendshipModels), nil
}

// --- Mapper Functions ---

func toFriendshipDomain(data *model.FriendshipModel) *entity.Friendship {
	if data == nil {
		return nil
	}

	return &entity.Friendship{
		ID:        data.ID,
		UserID:    data.UserID,
		FriendID:  data.FriendID,
		Status:    entity.FriendshipStatus(data.Status),
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
		Requester: toUserDomain(data.Requester),
	}
}

func toFriendshipDomains(data []*model.FriendshipModel) []*entity.Friendship {
	friendships := make([]*entity.Friendship, 0, len(data))
	for _, friendshipM := range data {
		friendships = append(friendships, toFriendshipDomain(friendshipM))
	}

	return friendships
}

func fromFriendshipDomain(data *entity.Friendship) *model.FriendshipModel {
	if data == nil {
		return nil
	}

	low, high := entity.OrderedPair(data.UserID, data.FriendID)

	return &model.FriendshipModel{
		ID:       data.ID,
		UserID:   data.UserID,
		FriendID: data.FriendID,
		PairLow:  low,
		PairHigh: high,
		Status:   string(data.Status),
	}
}
