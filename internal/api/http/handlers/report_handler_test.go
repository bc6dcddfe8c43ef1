package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/userplatform/platform-services/internal/domain"
)

func TestReportGenerateEndpoint(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	seedUser(t, repo, "alice", "")
	seedUser(t, repo, "bob", "")
	inactiveID := seedUser(t, repo, "carol", "")
	repo.mu.Lock()
	for _, user := range repo.users {
		if user.ID == inactiveID {
			user.Status = domain.UserStatusInactive
		}
	}
	repo.mu.Unlock()

	app := newReportApp(repo)

	status, body := doJSON(t, app, http.MethodPost, "/api/reports/generate",
		"Bearer "+issueToken(t, 1, "alice"), map[string]any{"type": "user_stats"})
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "user_stats", body["type"])
	require.NotEmpty(t, body["generated_at"])

	stats, ok := body["statistics"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, float64(3), stats["total_users"])
	require.Equal(t, float64(2), stats["active_users"])
	require.Equal(t, float64(1), stats["inactive_users"])
}

func TestReportGenerateEndpoint_DefaultType(t *testing.T) {
	t.Parallel()

	app := newReportApp(newMemUserRepo())

	status, body := doJSON(t, app, http.MethodPost, "/api/reports/generate",
		"Bearer "+issueToken(t, 1, "alice"), nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "user_stats", body["type"])
}

func TestReportListEndpoint(t *testing.T) {
	t.Parallel()

	app := newReportApp(newMemUserRepo())

	status, body := doJSON(t, app, http.MethodGet, "/api/reports/list",
		"Bearer "+issueToken(t, 1, "alice"), nil)
	require.Equal(t, http.StatusOK, status)

	reports, ok := body["reports"].([]any)
	require.True(t, ok)
	require.Len(t, reports, 2)
}

func TestReportEndpoints_Unauthorized(t *testing.T) {
	t.Parallel()

	app := newReportApp(newMemUserRepo())

	status, body := doJSON(t, app, http.MethodGet, "/api/reports/list", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)
	require.Equal(t, map[string]any{"error": "Unauthorized"}, body)

	status, _ = doJSON(t, app, http.MethodPost, "/api/reports/generate", "expired.or.bad", nil)
	require.Equal(t, http.StatusUnauthorized, status)
}

func TestReportGenerateEndpoint_StoreFailure(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	repo.unavailable = true
	app := newReportApp(repo)

	status, body := doJSON(t, app, http.MethodPost, "/api/reports/generate",
		"Bearer "+issueToken(t, 1, "alice"), map[string]any{"type": "user_stats"})
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "Database connection failed", body["error"])
}
