// Command budgetd serves on-demand reconciliations over HTTP.
//
//	budgetd                          start the API server
//	budgetd token -subject NAME      print a signed API token
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-reconciler/internal/app"
	"budget-reconciler/internal/config"
	"budget-reconciler/internal/handlers"
	"budget-reconciler/internal/middleware"
	"budget-reconciler/internal/services"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load .env: %v\n", err)
		os.Exit(1)
	}

	cfg := config.Load()
	logger := app.NewLogger(cfg.Logging, os.Stdout)
	slog.SetDefault(logger)

	if len(os.Args) > 1 && os.Args[1] == "token" {
		if err := printToken(cfg, os.Args[2:], os.Stdout); err != nil {
			logger.Error("Failed to issue token", "error", err)
			os.Exit(1)
		}
		return
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := serve(cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
}

// printToken writes a signed token for the report API to w
func printToken(cfg *config.Config, args []string, w io.Writer) error {
	flags := flag.NewFlagSet("token", flag.ContinueOnError)
	subject := flags.String("subject", "", "token subject, e.g. the calling service or operator")
	if err := flags.Parse(args); err != nil {
		return err
	}

	token, expiresAt, err := services.NewTokenService(cfg.Auth).GenerateToken(*subject)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\nexpires_at=%s\n", token, expiresAt.UTC().Format(time.RFC3339))
	return err
}

func serve(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	metrics := services.NewPrometheusMetrics()

	reconciliation, err := app.NewReconciliation(cfg, metrics, logger)
	if err != nil {
		return err
	}

	delivery, err := app.NewDelivery(ctx, cfg, metrics, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := delivery.Close(); err != nil {
			logger.Warn("Failed to close delivery resources", "error", err)
		}
	}()

	limiter := middleware.NewRateLimiter(cfg.Server.RateLimitPerSecond, cfg.Server.RateLimitBurst)
	go limiter.Run(ctx, time.Minute)

	var db *gorm.DB
	if delivery.DB != nil {
		db = delivery.DB.DB
	}

	e := newServer(cfg, serverDeps{
		health:       handlers.NewHealthCheckHandler(db),
		reports:      handlers.NewReportHandler(reconciliation, delivery.Dispatcher, delivery.ExportRepo, logger),
		tokenService: services.NewTokenService(cfg.Auth),
		limiter:      limiter,
	})

	errCh := make(chan error, 1)
	go func() {
		address := cfg.Server.Host + ":" + cfg.Server.Port
		logger.Info("Starting budgetd", "address", address, "environment", cfg.Server.Environment)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	logger.Info("Server stopped gracefully")
	return nil
}

type serverDeps struct {
	health       *handlers.HealthCheckHandler
	reports      *handlers.ReportHandler
	tokenService services.TokenServiceInterface
	limiter      *middleware.RateLimiter
}

func newServer(cfg *config.Config, deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handlers.NewValidator()
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders(cfg.IsProduction()))

	e.GET("/health", deps.health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api/v1", deps.limiter.Middleware(), middleware.RequireAuth(deps.tokenService))
	api.POST("/reports", deps.reports.RunReport)
	api.GET("/reports/:run_id/rows", deps.reports.ListExportRows)

	return e
}
