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
)

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *gorm.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice stores a device. A push token belongs to one account at a
// time: other devices still holding it are deactivated, which happens when a
// second account signs in on the same install.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	deviceM := fromDeviceDomain(device)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := releaseToken(tx, deviceM.FCMToken, uuid.Nil); err != nil {
			return err
		}

		return tx.Create(deviceM).Error
	})
	if err != nil {
		switch {
		case isUniqueConstraintViolation(err):
			return repository.ErrDuplicateDevice
		case isForeignKeyConstraintViolation(err):
			return repository.ErrUserNotFound
		case isNotNullConstraintViolation(err):
			return domainerrors.ErrValidationFailed.WithDetails("missing required device information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	device.ID = deviceM.ID
	device.CreatedAt = deviceM.CreatedAt
	device.UpdatedAt = deviceM.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel

	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&deviceM).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrDeviceNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return toDeviceDomain(&deviceM), nil
}

// FindDevicesByUser lists every device of userID, inactive ones included.
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := repo.listDevices(ctx, userID, false)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices by user")
	}

	return devices, nil
}

// FindActiveDevicesByUser lists the devices of userID that receive pushes.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID uuid.UUID) ([]*entity.UserDevice, error) {
	devices, err := repo.listDevices(ctx, userID, true)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices by user")
	}

	return devices, nil
}

// UpdateFCMToken replaces the token of a device and reactivates it. The
// token is released from any other device first.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID uuid.UUID, fcmToken string) error {
	var rows int64
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := releaseToken(tx, fcmToken, deviceID); err != nil {
			return err
		}

		result := tx.Model(&model.UserDeviceModel{}).
			Where("id = ?", deviceID).
			Updates(map[string]any{"fcm_token": fcmToken, "is_active": true})
		rows = result.RowsAffected

		return result.Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return errors.Wrap(err, "failed to update FCM token")
	}
	if rows == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeleteDevice soft-deletes a device.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserDeviceModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete device")
	}
	if result.RowsAffected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByFCMTokens flags devices holding any of tokens as inactive so
// they are skipped on the next push.
func (repo *deviceRepository) DeactivateByFCMTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserDeviceModel{}).
		Where("fcm_token IN ? AND is_active = ?", tokens, true).
		Update("is_active", false)
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to deactivate devices")
	}

	return result.RowsAffected, nil
}

func (repo *deviceRepository) listDevices(ctx context.Context, userID uuid.UUID, activeOnly bool) ([]*entity.UserDevice, error) {
	query := repo.db.WithContext(ctx).Where("user_id = ?", userID)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var deviceModels []*model.UserDeviceModel
	if err := query.Order("created_at DESC").Find(&deviceModels).Error; err != nil {
		return nil, err
	}

	devices := make([]*entity.UserDevice, 0, len(deviceModels))
	for _, deviceM := range deviceModels {
		devices = append(devices, toDeviceDomain(deviceM))
	}

	return devices, nil
}

// releaseToken deactivates every active device holding token except keep.
func releaseToken(tx *gorm.DB, token string, keep uuid.UUID) error {
	query := tx.Model(&model.UserDeviceModel{}).Where("fcm_token = ? AND is_active = ?", token, true)
	if keep != uuid.Nil {
		query = query.Where("id <> ?", keep)
	}

	return query.Update("is_active", false).Error
}

func toDeviceDomain(data *model.UserDeviceModel) *entity.UserDevice {
	if data == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromDeviceDomain(data *entity.UserDevice) *model.UserDeviceModel {
	if data == nil {
		return nil
	}

	return &model.UserDeviceModel{
		ID:        data.ID,
		UserID:    data.UserID,
		FCMToken:  data.FCMToken,
		DeviceID:  data.DeviceID,
		Platform:  data.Platform,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
