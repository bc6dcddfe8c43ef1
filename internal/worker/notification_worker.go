package worker

import (
	"context"

	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/events"
)

// StartNotificationWorker subscribes the stub notification handlers. Handlers
// only log; delivery is out of scope for the platform.
func StartNotificationWorker(dispatcher events.Dispatcher, logger *zap.Logger) {
	if dispatcher == nil {
		return
	}

	dispatcher.Subscribe(events.EventUserRegistered, func(_ context.Context, event events.Event) error {
		logger.Info("welcome notification stub",
			zap.Int64("user_id", event.UserID),
			zap.Any("payload", event.Payload))
		return nil
	})

	dispatcher.Subscribe(events.EventProfileUpdated, func(_ context.Context, event events.Event) error {
		logger.Info("profile updated notification stub",
			zap.Int64("user_id", event.UserID),
			zap.Any("payload", event.Payload))
		return nil
	})

	dispatcher.Subscribe(events.EventNotificationSent, func(_ context.Context, event events.Event) error {
		logger.Info("notification send recorded",
			zap.String("event_id", event.ID),
			zap.Int64("user_id", event.UserID))
		return nil
	})
}
