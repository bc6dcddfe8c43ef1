package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/domain"
	"github.com/userplatform/platform-services/internal/service"
	"github.com/userplatform/platform-services/pkg/util"
)

func TestReportGenerate(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	authSvc := newAuthService(repo, nil)
	for _, name := range []string{"alice", "bob", "carol"} {
		_, err := authSvc.Register(context.Background(), name, "p1", "")
		require.NoError(t, err)
	}
	repo.mu.Lock()
	repo.users["carol"].Status = domain.UserStatusInactive
	repo.mu.Unlock()

	svc := service.NewReportService(repo, zap.NewNop())

	report, err := svc.Generate(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, "user_stats", report.Type)
	require.Equal(t, int64(3), report.Statistics.TotalUsers)
	require.Equal(t, int64(2), report.Statistics.ActiveUsers)
	require.Equal(t, int64(1), report.Statistics.InactiveUsers)

	generatedAt, err := time.Parse(time.RFC3339, report.GeneratedAt)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now(), generatedAt, 5*time.Second)

	custom, err := svc.Generate(context.Background(), "signups")
	require.NoError(t, err)
	require.Equal(t, "signups", custom.Type)
}

func TestReportGenerate_StoreUnavailable(t *testing.T) {
	t.Parallel()

	repo := newMemUserRepo()
	repo.unavailable = true
	svc := service.NewReportService(repo, zap.NewNop())

	_, err := svc.Generate(context.Background(), "user_stats")
	require.Equal(t, "UNAVAILABLE", util.ToDomainError(err).Code)
}

func TestReportList_Stub(t *testing.T) {
	t.Parallel()

	svc := service.NewReportService(newMemUserRepo(), zap.NewNop())
	listings := svc.List(context.Background())
	require.Len(t, listings, 2)
	require.Equal(t, "daily_stats", listings[0].Type)
	require.Equal(t, "user_activity", listings[1].Type)
}
