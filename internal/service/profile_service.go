package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/domain"
	"github.com/userplatform/platform-services/internal/events"
	"github.com/userplatform/platform-services/internal/repository"
)

// ProfileService reads and updates the caller's own account record.
type ProfileService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewProfileService builds the service.
func NewProfileService(users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *ProfileService {
	return &ProfileService{users: users, dispatcher: dispatcher, logger: logger}
}

// Get returns the account identified by the verified token.
func (s *ProfileService) Get(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return user, nil
}

// UpdateEmail sets a new email address. An empty email is a no-op; email is
// the only mutable profile field.
func (s *ProfileService) UpdateEmail(ctx context.Context, userID int64, email string) error {
	if email == "" {
		return nil
	}
	if err := s.users.UpdateEmail(ctx, userID, email); err != nil {
		return mapStoreError(err)
	}
	s.logger.Info("profile email updated", zap.Int64("user_id", userID))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventProfileUpdated, userID,
			events.ProfileUpdatedPayload{Email: email}))
	}
	return nil
}
