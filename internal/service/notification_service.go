package service

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/events"
	"github.com/userplatform/platform-services/internal/persistence"
)

const (
	recentSendsKey = "notifications:recent"
	recentSendsCap = 100
)

// Notification is a single entry in a user's notification feed.
type Notification struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
	Read    bool   `json:"read"`
}

// RecentSend is one entry in the capped recent-sends buffer.
type RecentSend struct {
	UserID  int64  `json:"user_id"`
	Message string `json:"message"`
	SentAt  string `json:"sent_at"`
}

// NotificationService serves the notification stub endpoints. Sends are
// recorded and logged only; there is no delivery transport.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *persistence.Redis
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, redis *persistence.Redis, logger *zap.Logger) *NotificationService {
	return &NotificationService{dispatcher: dispatcher, redis: redis, logger: logger}
}

// List returns the stub notification feed.
func (s *NotificationService) List(_ context.Context, _ int64) []Notification {
	return []Notification{
		{ID: 1, Message: "Welcome to the platform!", Read: false},
		{ID: 2, Message: "Your profile has been updated", Read: true},
	}
}

// Send records a notification send. The event goes to the in-process
// dispatcher and, when redis is configured, onto a capped recent-sends list.
func (s *NotificationService) Send(ctx context.Context, userID int64, message string) error {
	s.logger.Info("sending notification",
		zap.Int64("user_id", userID),
		zap.String("message", message))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventNotificationSent, userID,
			events.NotificationSentPayload{Message: message}))
	}

	s.recordRecentSend(ctx, userID, message)
	return nil
}

func (s *NotificationService) recordRecentSend(ctx context.Context, userID int64, message string) {
	if s.redis == nil || s.redis.Client == nil {
		return
	}

	entry, err := json.Marshal(RecentSend{
		UserID:  userID,
		Message: message,
		SentAt:  time.Now().Format(time.RFC3339),
	})
	if err != nil {
		return
	}

	pipe := s.redis.Client.Pipeline()
	pipe.LPush(ctx, recentSendsKey, entry)
	pipe.LTrim(ctx, recentSendsKey, 0, recentSendsCap-1)
	if _, err := pipe.Exec(ctx); err != nil {
		s.logger.Warn("failed to record recent send", zap.Error(err))
	}
}

// RecentSends returns the most recent recorded sends, newest first. Empty
// when redis is not configured. Entries that fail to decode are skipped.
func (s *NotificationService) RecentSends(ctx context.Context, limit int64) ([]RecentSend, error) {
	sends := make([]RecentSend, 0)
	if s.redis == nil || s.redis.Client == nil {
		return sends, nil
	}
	if limit <= 0 || limit > recentSendsCap {
		limit = recentSendsCap
	}
	entries, err := s.redis.Client.LRange(ctx, recentSendsKey, 0, limit-1).Result()
	if err != nil {
		return nil, err
	}
	for _, raw := range entries {
		var send RecentSend
		if err := json.Unmarshal([]byte(raw), &send); err != nil {
			continue
		}
		sends = append(sends, send)
	}
	return sends, nil
}
