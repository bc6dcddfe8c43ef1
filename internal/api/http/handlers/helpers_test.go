package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	httptransport "github.com/userplatform/platform-services/internal/api/http"
	"github.com/userplatform/platform-services/internal/api/http/handlers"
	"github.com/userplatform/platform-services/internal/auth"
	"github.com/userplatform/platform-services/internal/config"
	"github.com/userplatform/platform-services/internal/domain"
	"github.com/userplatform/platform-services/internal/observability"
	"github.com/userplatform/platform-services/internal/repository"
	"github.com/userplatform/platform-services/internal/service"
)

const testSecret = "test-secret"

// memUserRepo is an in-memory UserRepository for handler tests.
type memUserRepo struct {
	mu          sync.Mutex
	seq         int64
	users       map[string]*domain.User
	unavailable bool
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*domain.User)}
}

func (r *memUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return repository.ErrUnavailable
	}
	if _, ok := r.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	r.seq++
	user.ID = r.seq
	user.CreatedAt = time.Now()
	copied := *user
	r.users[user.Username] = &copied
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return nil, repository.ErrUnavailable
	}
	user, ok := r.users[username]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return nil, repository.ErrUnavailable
	}
	for _, user := range r.users {
		if user.ID == id {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) UpdateEmail(_ context.Context, id int64, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return repository.ErrUnavailable
	}
	for _, user := range r.users {
		if user.ID == id {
			user.Email = email
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *memUserRepo) CountByStatus(_ context.Context) (repository.UserCounts, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.unavailable {
		return repository.UserCounts{}, repository.ErrUnavailable
	}
	var counts repository.UserCounts
	for _, user := range r.users {
		counts.Total++
		if user.IsActive() {
			counts.Active++
		}
	}
	return counts, nil
}

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:      testSecret,
		TokenTTLHours:  24,
		PasswordScheme: "sha256",
	}
}

func newApp() *fiber.App {
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	return app
}

func newAuthApp(repo repository.UserRepository, store handlers.Pinger) *fiber.App {
	authService := service.NewAuthService(testAuthConfig(), repo, nil, zap.NewNop())

	app := newApp()
	httptransport.RegisterAuthRoutes(app, httptransport.AuthRoutes{
		Health: handlers.NewHealthHandler(store),
		Auth:   handlers.NewAuthHandler(authService),
	})
	return app
}

func newProfileApp(repo repository.UserRepository) *fiber.App {
	tokens := auth.NewTokenManager(testSecret, 24*time.Hour)

	app := newApp()
	httptransport.RegisterProfileRoutes(app, httptransport.ProfileRoutes{
		Health:      handlers.NewHealthHandler(stubPinger{}),
		Profile:     handlers.NewProfileHandler(service.NewProfileService(repo, nil, zap.NewNop())),
		RequireAuth: auth.RequireAuth(tokens),
	})
	return app
}

func newNotificationApp() *fiber.App {
	tokens := auth.NewTokenManager(testSecret, 24*time.Hour)

	app := newApp()
	httptransport.RegisterNotificationRoutes(app, httptransport.NotificationRoutes{
		Health:        handlers.NewHealthHandler(stubPinger{}),
		Notifications: handlers.NewNotificationHandler(service.NewNotificationService(nil, nil, zap.NewNop())),
		RequireAuth:   auth.RequireAuth(tokens),
	})
	return app
}

func newReportApp(repo repository.UserRepository) *fiber.App {
	tokens := auth.NewTokenManager(testSecret, 24*time.Hour)

	app := newApp()
	httptransport.RegisterReportRoutes(app, httptransport.ReportRoutes{
		Health:      handlers.NewHealthHandler(stubPinger{}),
		Reports:     handlers.NewReportHandler(service.NewReportService(repo, zap.NewNop())),
		RequireAuth: auth.RequireAuth(tokens),
	})
	return app
}

func issueToken(t *testing.T, userID int64, username string) string {
	t.Helper()
	token, err := auth.NewTokenManager(testSecret, 24*time.Hour).Issue(userID, username)
	require.NoError(t, err)
	return token
}

// doJSON performs a request against the app and decodes the JSON response.
func doJSON(t *testing.T, app *fiber.App, method, path, bearer string, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}
