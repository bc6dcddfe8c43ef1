package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/userplatform/platform-services/internal/api/http"
	"github.com/userplatform/platform-services/internal/api/http/handlers"
	"github.com/userplatform/platform-services/internal/auth"
	"github.com/userplatform/platform-services/internal/config"
	"github.com/userplatform/platform-services/internal/observability"
	"github.com/userplatform/platform-services/internal/persistence"
	"github.com/userplatform/platform-services/internal/repository"
	"github.com/userplatform/platform-services/internal/service"
)

func main() {
	cfg, err := config.Load("report-service", "8004")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	userRepo := repository.NewUserRepository(pg.PoolHandle())
	reportService := service.NewReportService(userRepo, logger)
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL())

	metrics := observability.NewMetrics()
	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterReportRoutes(app, httptransport.ReportRoutes{
		Health:      handlers.NewHealthHandler(pg),
		Reports:     handlers.NewReportHandler(reportService),
		RequireAuth: auth.RequireAuth(tokens),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
