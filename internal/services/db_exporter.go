package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-reconciler/internal/models"
	"budget-reconciler/internal/repositories"
)

// DatabaseExporter stores a report in the flat export_rows table. Exporting
// the same run again replaces its rows.
type DatabaseExporter struct {
	repo      repositories.ExportRepositoryInterface
	retention time.Duration
	logger    *slog.Logger
}

// NewDatabaseExporter creates a database sink. A positive retention purges
// rows older than it after every export.
func NewDatabaseExporter(repo repositories.ExportRepositoryInterface, retention time.Duration, logger *slog.Logger) *DatabaseExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &DatabaseExporter{
		repo:      repo,
		retention: retention,
		logger:    logger,
	}
}

func (e *DatabaseExporter) Name() string {
	return "database"
}

func (e *DatabaseExporter) Export(ctx context.Context, report *models.BudgetReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	rows := models.NewExportRows(report)
	if err := e.repo.ReplaceRun(report.RunID, rows); err != nil {
		return fmt.Errorf("store run %s: %w", report.RunID, err)
	}

	if e.retention > 0 {
		purged, err := e.repo.DeleteOlderThan(e.retention)
		if err != nil {
			e.logger.Warn("failed to purge old export rows", "error", err)
		} else if purged > 0 {
			e.logger.Info("purged old export rows", "rows", purged)
		}
	}

	return nil
}
