package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"
)

// ReportDispatcher hands a finished report to every exporter and then to
// every notifier. A failing sink does not stop the others; all failures are
// returned together.
type ReportDispatcher struct {
	exporters []ExporterInterface
	notifiers []NotifierInterface
	metrics   MetricsRecorderInterface
	logger    *slog.Logger
}

func NewReportDispatcher(
	exporters []ExporterInterface,
	notifiers []NotifierInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) *ReportDispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if metrics == nil {
		metrics = NoopMetrics{}
	}
	return &ReportDispatcher{
		exporters: exporters,
		notifiers: notifiers,
		metrics:   metrics,
		logger:    logger,
	}
}

func (d *ReportDispatcher) Dispatch(ctx context.Context, report *models.BudgetReport) error {
	if report == nil {
		return errors.New("report cannot be nil")
	}

	logger := d.logger.With("run_id", report.RunID)
	var failures []error

	for _, exporter := range d.exporters {
		if err := ctx.Err(); err != nil {
			return err
		}

		status := "success"
		if err := exporter.Export(ctx, report); err != nil {
			status = "error"
			logger.Error("report export failed", "sink", exporter.Name(), "error", err)
			failures = append(failures, fmt.Errorf("export %s: %w: %w", exporter.Name(), apierrors.ErrExportFailed, err))
		} else {
			logger.Info("report exported", "sink", exporter.Name())
		}
		d.metrics.IncrementCounter("report.export", map[string]string{"sink": exporter.Name(), "status": status})
	}

	for _, notifier := range d.notifiers {
		if err := ctx.Err(); err != nil {
			return err
		}

		status := "success"
		if err := notifier.Notify(ctx, report); err != nil {
			status = "error"
			logger.Error("report notification failed", "channel", notifier.Name(), "error", err)
			failures = append(failures, fmt.Errorf("notify %s: %w: %w", notifier.Name(), apierrors.ErrNotifyFailed, err))
		} else {
			logger.Info("report notification sent", "channel", notifier.Name())
		}
		d.metrics.IncrementCounter("report.notify", map[string]string{"channel": notifier.Name(), "status": status})
	}

	return errors.Join(failures...)
}
