package impl

import (
	"context"
	"log/slog"

	deliverycontext "subsplit/internal/delivery/context"
	domainerrors "subsplit/internal/domain/errors"
	"subsplit/internal/domain/repository"
	"subsplit/internal/domain/service"
	"subsplit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Firebase batch size limit
const firebaseBatchSize = 500

type pushService struct {
	deviceRepo repository.DeviceRepository
	pushSvc    service.PushService
	logger     *slog.Logger
}

// PushServiceParams holds dependencies for PushService, injected by Fx.
type PushServiceParams struct {
	fx.In

	DeviceRepo repository.DeviceRepository
	PushSvc    service.PushService
	Logger     *slog.Logger
}

// NewPushService creates the use case the push worker runs for every event.
func NewPushService(params PushServiceParams) usecase.PushUsecase {
	return &pushService{
		deviceRepo: params.DeviceRepo,
		pushSvc:    params.PushSvc,
		logger:     params.Logger,
	}
}

// DeliverPush sends one notification to every active device of its recipient
// and deactivates the devices whose tokens the provider rejected.
func (srv *pushService) DeliverPush(ctx context.Context, event *service.PushEvent) (*usecase.PushDeliveryResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)

	if event == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "push event is required")
	}
	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "push event has an invalid user id")
	}

	devices, err := srv.deviceRepo.FindActiveDevicesByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find active devices")
	}

	result := &usecase.PushDeliveryResult{Devices: len(devices)}
	if len(devices) == 0 {
		logger.Debug("No active devices for push", slog.String("userID", event.UserID))

		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.FCMToken)
	}

	data := make(map[string]string, len(event.Data)+2)
	for k, v := range event.Data {
		data[k] = v
	}
	data["notification_id"] = event.NotificationID
	data["notification_type"] = event.NotificationType

	var invalidTokens []string
	for i := 0; i < len(tokens); i += firebaseBatchSize {
		batch := tokens[i:min(i+firebaseBatchSize, len(tokens))]

		successCount, failureCount, batchInvalid, err := srv.pushSvc.SendBatchNotification(ctx, batch, event.Title, event.Body, data)
		if err != nil {
			// Keep going with the remaining batches.
			logger.Warn("Push batch failed", slog.Int("batchSize", len(batch)), slog.Any("error", err))
			result.FailureCount += len(batch)

			continue
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		invalidTokens = append(invalidTokens, batchInvalid...)
	}

	if len(invalidTokens) > 0 {
		deactivated, err := srv.deviceRepo.DeactivateByFCMTokens(ctx, invalidTokens)
		if err != nil {
			logger.Warn("Failed to deactivate devices with invalid tokens", slog.Any("error", err))
		}
		result.DeactivatedDevices = deactivated
	}

	if result.SuccessCount == 0 && result.FailureCount > 0 && len(invalidTokens) < result.FailureCount {
		return result, errors.Errorf("push delivery failed for all %d devices", result.Devices)
	}

	logger.Info("Push delivered",
		slog.String("notificationID", event.NotificationID),
		slog.Int("devices", result.Devices),
		slog.Int("success", result.SuccessCount),
		slog.Int("failure", result.FailureCount),
		slog.Int64("deactivated", result.DeactivatedDevices),
	)

	return result, nil
}
