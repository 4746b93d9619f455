package postgres

import (
	"context"
	"encoding/json"

	"subsplit/internal/domain/entity"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultNotificationLimit = 50

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// CreateBatch inserts notifications in one statement and writes generated ids back.
func (repo *notificationRepository) CreateBatch(ctx context.Context, notifications []*entity.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.NotificationModel, 0, len(notifications))
	for _, n := range notifications {
		notificationM, err := fromNotificationDomain(n)
		if err != nil {
			return err
		}
		notificationModels = append(notificationModels, notificationM)
	}

	if err := repo.db.WithContext(ctx).Omit("User").Create(&notificationModels).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].ID = notificationM.ID
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// FindByID retrieves one of userID's notifications.
func (repo *notificationRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Notification, error) {
	var notificationM model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notificationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, errors.Wrap(err, "failed to find notification by ID")
	}

	return toNotificationDomain(&notificationM)
}

// FindByUser lists userID's notifications newest first.
func (repo *notificationRepository) FindByUser(ctx context.Context, userID uuid.UUID, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.UnreadOnly {
		query = query.Where("read = ?", false)
	}

	var notificationModels []*model.NotificationModel
	if err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by user")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		n, err := toNotificationDomain(notificationM)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, nil
}

// CountUnread counts userID's unread notifications.
func (repo *notificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead flags one notification as read. Marking an already read row succeeds.
func (repo *notificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read", true)

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead flags every unread notification of userID as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("user_id = ? AND read = ?", userID, false).
		Update("read", true)

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark notifications read")
	}

	return result.RowsAffected, nil
}

// Delete removes one notification of userID.
func (repo *notificationRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// DeleteAll clears the outbox of userID.
func (repo *notificationRepository) DeleteAll(ctx context.Context, userID uuid.UUID) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete notifications")
	}

	return result.RowsAffected, nil
}

// DeleteByContent removes notifications of a type whose content field matches value.
func (repo *notificationRepository) DeleteByContent(
	ctx context.Context,
	userID uuid.UUID,
	notificationType entity.NotificationType,
	field, value string,
) ([]uuid.UUID, error) {
	var deleted []model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "id"}}}).
		Where("user_id = ? AND type = ? AND content->>? = ?", userID, string(notificationType), field, value).
		Delete(&deleted).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to delete notifications by content")
	}

	ids := make([]uuid.UUID, 0, len(deleted))
	for _, notificationM := range deleted {
		ids = append(ids, notificationM.ID)
	}

	return ids, nil
}

// --- Mapper Functions ---

// toNotificationDomain decodes the stored jsonb into the typed content struct.
func toNotificationDomain(data *model.NotificationModel) (*entity.Notification, error) {
	if data == nil {
		return nil, nil
	}

	notificationType := entity.NotificationType(data.Type)
	content, err := entity.DecodeNotificationContent(notificationType, []byte(data.Content))
	if err != nil {
		return nil, err
	}

	var metadata map[string]string
	if data.Metadata != nil {
		if err := json.Unmarshal([]byte(*data.Metadata), &metadata); err != nil {
			return nil, errors.Wrap(err, "decode notification metadata")
		}
	}

	return &entity.Notification{
		ID:        data.ID,
		UserID:    data.UserID,
		Type:      notificationType,
		Content:   content,
		Metadata:  metadata,
		Read:      data.Read,
		CreatedAt: data.CreatedAt,
	}, nil
}

func fromNotificationDomain(data *entity.Notification) (*model.NotificationModel, error) {
	content, err := json.Marshal(data.Content)
	if err != nil {
		return nil, errors.Wrap(err, "encode notification content")
	}

	var metadata *string
	if len(data.Metadata) > 0 {
		raw, err := json.Marshal(data.Metadata)
		if err != nil {
			return nil, errors.Wrap(err, "encode notification metadata")
		}
		encoded := string(raw)
		metadata = &encoded
	}

	return &model.NotificationModel{
		ID:       data.ID,
		UserID:   data.UserID,
		Type:     string(data.Type),
		Content:  string(content),
		Metadata: metadata,
		Read:     data.Read,
	}, nil
}
