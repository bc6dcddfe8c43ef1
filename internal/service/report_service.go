package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/userplatform/platform-services/internal/repository"
)

// ReportStatistics is the aggregate block of a generated report.
type ReportStatistics struct {
	TotalUsers    int64 `json:"total_users"`
	ActiveUsers   int64 `json:"active_users"`
	InactiveUsers int64 `json:"inactive_users"`
}

// Report is a generated statistics report.
type Report struct {
	Type        string           `json:"type"`
	GeneratedAt string           `json:"generated_at"`
	Statistics  ReportStatistics `json:"statistics"`
}

// ReportListing is one row of the stub report index.
type ReportListing struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// ReportService generates user-count reports. Everything beyond the two
// status counts is stub data; there is no report computation engine.
type ReportService struct {
	users  repository.UserRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewReportService builds the service.
func NewReportService(users repository.UserRepository, logger *zap.Logger) *ReportService {
	return &ReportService{users: users, logger: logger, now: time.Now}
}

// Generate assembles a report of the requested type over current user counts.
func (s *ReportService) Generate(ctx context.Context, reportType string) (*Report, error) {
	if reportType == "" {
		reportType = "user_stats"
	}

	counts, err := s.users.CountByStatus(ctx)
	if err != nil {
		return nil, mapStoreError(err)
	}
	s.logger.Debug("report generated",
		zap.String("type", reportType),
		zap.Int64("total_users", counts.Total))

	return &Report{
		Type:        reportType,
		GeneratedAt: s.now().Format(time.RFC3339),
		Statistics: ReportStatistics{
			TotalUsers:    counts.Total,
			ActiveUsers:   counts.Active,
			InactiveUsers: counts.Total - counts.Active,
		},
	}, nil
}

// List returns the stub report index.
func (s *ReportService) List(_ context.Context) []ReportListing {
	return []ReportListing{
		{ID: 1, Type: "daily_stats", CreatedAt: "2024-01-01"},
		{ID: 2, Type: "user_activity", CreatedAt: "2024-01-02"},
	}
}
