package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/auth"
	"github.com/userplatform/platform-services/internal/config"
	"github.com/userplatform/platform-services/internal/domain"
	"github.com/userplatform/platform-services/internal/events"
	"github.com/userplatform/platform-services/internal/repository"
	"github.com/userplatform/platform-services/pkg/util"
)

// UserSummary is the public view of an account, safe to return to clients.
type UserSummary struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthService coordinates registration, login and token validation.
type AuthService struct {
	users      repository.UserRepository
	hasher     auth.Hasher
	tokens     *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, users repository.UserRepository, dispatcher events.Dispatcher, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		hasher:     auth.NewHasher(cfg.PasswordScheme, cfg.BcryptCost),
		tokens:     auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL()),
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Register creates a new account and returns its identity. The existence
// check is only a fast path; the unique constraint on username catches
// concurrent duplicates.
func (s *AuthService) Register(ctx context.Context, username, password, email string) (int64, error) {
	if username == "" || password == "" {
		return 0, util.NewBadRequest("Username and password are required")
	}

	if _, err := s.users.GetByUsername(ctx, username); err == nil {
		return 0, util.NewConflict("User already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return 0, mapStoreError(err)
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return 0, util.NewInternalError(err)
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: digest,
		Email:        email,
		Status:       domain.UserStatusActive,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return 0, util.NewConflict("User already exists")
		}
		return 0, mapStoreError(err)
	}

	s.logger.Info("user registered", zap.Int64("user_id", user.ID), zap.String("username", user.Username))

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.New(events.EventUserRegistered, user.ID,
			events.UserRegisteredPayload{Username: user.Username}))
	}
	return user.ID, nil
}

// Login authenticates an account and issues a session token. Unknown
// usernames and wrong passwords yield the same error so responses never
// reveal which of the two failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *UserSummary, error) {
	if username == "" || password == "" {
		return "", nil, util.NewBadRequest("Username and password are required")
	}

	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, util.NewUnauthorized("Invalid credentials")
		}
		return "", nil, mapStoreError(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return "", nil, util.NewUnauthorized("Invalid credentials")
	}

	if !user.IsActive() {
		return "", nil, util.NewForbidden("User account is not active")
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, util.NewInternalError(err)
	}

	return token, &UserSummary{ID: user.ID, Username: user.Username, Email: user.Email}, nil
}

// Validate checks the bearer token in an Authorization header value and
// returns the caller's user id. The three failure modes carry distinct
// messages.
func (s *AuthService) Validate(_ context.Context, authorizationHeader string) (int64, error) {
	token := auth.ExtractBearer(authorizationHeader)
	if token == "" {
		return 0, util.NewUnauthorized("Token required")
	}

	claims, err := s.tokens.Verify(token)
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return 0, util.NewUnauthorized("Token expired")
		}
		return 0, util.NewUnauthorized("Invalid token")
	}
	return claims.UserID, nil
}

// mapStoreError converts repository sentinels into boundary errors without
// ever letting a classifiable failure fall through to the generic internal
// catch-all.
func mapStoreError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return util.NewNotFound("User not found")
	case errors.Is(err, repository.ErrDuplicateUsername):
		return util.NewConflict("User already exists")
	case errors.Is(err, repository.ErrUnavailable):
		return util.NewUnavailable(err)
	default:
		return util.NewInternalError(err)
	}
}
