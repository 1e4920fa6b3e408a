package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/finance_tracker/internal/adapters/amqp"
	"github.com/SscSPs/finance_tracker/internal/adapters/render"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/core/services"
	"github.com/SscSPs/finance_tracker/internal/handlers"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/repositories/database/pgsql"
	"github.com/SscSPs/finance_tracker/internal/utils"
	"github.com/SscSPs/finance_tracker/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Finance Tracker API
// @version 1.0
// @description Accounts, transactions, budgets and asynchronous statistics reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...", slog.String("path", cfg.MigrationsPath))
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Database migrations failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	renderer, err := render.NewDefaultRenderer()
	if err != nil {
		logger.Error("Failed to parse report templates", slog.String("error", err.Error()))
		os.Exit(1)
	}

	notifier, closeNotifier := newReportNotifier(cfg, logger)
	defer closeNotifier()

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(cfg, repos, renderer, notifier)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var tracker middleware.EventTracker
	if analytics.IsInitialized() {
		tracker = analytics
	}
	handlers.RegisterRoutes(r, cfg, serviceContainer, tracker)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", slog.String("error", err.Error()))
	}

	waitForReports(shutdownCtx, serviceContainer.Report, logger)
	logger.Info("Server stopped gracefully")
}

// newReportNotifier publishes report events to RabbitMQ when AMQP_URL is set.
func newReportNotifier(cfg *config.Config, logger *slog.Logger) (portssvc.ReportNotifier, func()) {
	if cfg.AMQPURL == "" {
		logger.Info("AMQP_URL not set, report events are not published")
		return amqp.NoopNotifier{}, func() {}
	}
	n, err := amqp.NewNotifier(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		logger.Warn("Failed to connect to AMQP broker, report events are not published", slog.String("error", err.Error()))
		return amqp.NoopNotifier{}, func() {}
	}
	logger.Info("Publishing report events", slog.String("exchange", cfg.AMQPExchange))
	return n, func() {
		if err := n.Close(); err != nil {
			logger.Warn("Failed to close AMQP connection", slog.String("error", err.Error()))
		}
	}
}

// waitForReports lets in-flight report jobs reach a terminal state before the pool closes.
func waitForReports(ctx context.Context, reports portssvc.ReportSvcFacade, logger *slog.Logger) {
	done := make(chan struct{})
	go func() {
		reports.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		logger.Warn("Report jobs still running at shutdown deadline")
	}
}
