// Command reconcile runs one reconciliation for the current budget cycle,
// prints the summary and hands the report to the configured sinks.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"budget-reconciler/internal/app"
	"budget-reconciler/internal/config"
	"budget-reconciler/internal/dto"
	"budget-reconciler/internal/models"

	"github.com/joho/godotenv"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("reconcile", flag.ContinueOnError)
	today := flags.String("today", "", "reconcile as of this date (YYYY-MM-DD), defaults to the current date")
	dryRun := flags.Bool("dry-run", false, "print the report without exporting or notifying")
	envFile := flags.String("env", ".env", "dotenv file to load before reading the environment")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to load %s: %v\n", *envFile, err)
		return 1
	}

	cfg := config.Load()
	logger := app.NewLogger(cfg.Logging, os.Stderr)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		return 1
	}

	date := models.TruncateToDate(time.Now())
	if *today != "" {
		parsed, err := models.ParseDate(*today)
		if err != nil {
			logger.Error("Invalid -today value", "value", *today, "error", err)
			return 2
		}
		date = parsed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reconciliation, err := app.NewReconciliation(cfg, nil, logger)
	if err != nil {
		logger.Error("Failed to build reconciliation", "error", err)
		return 1
	}

	report, err := reconciliation.Run(ctx, date)
	if err != nil {
		logger.Error("Reconciliation failed", "today", date.Format(models.DateLayout), "error", err)
		return 1
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(dto.NewReportSummary(report)); err != nil {
		logger.Error("Failed to print report", "error", err)
		return 1
	}

	if *dryRun {
		logger.Info("Dry run, skipping delivery", "run_id", report.RunID)
		return 0
	}

	delivery, err := app.NewDelivery(ctx, cfg, nil, logger)
	if err != nil {
		logger.Error("Failed to configure delivery", "error", err)
		return 1
	}
	defer func() {
		if err := delivery.Close(); err != nil {
			logger.Warn("Failed to close delivery resources", "error", err)
		}
	}()

	if err := delivery.Dispatcher.Dispatch(ctx, report); err != nil {
		logger.Error("Report delivery incomplete", "run_id", report.RunID, "error", err)
		return 1
	}

	logger.Info("Report delivered", "run_id", report.RunID)
	return 0
}
