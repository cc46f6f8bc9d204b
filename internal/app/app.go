// Package app assembles the reconciliation pipeline and its delivery sinks
// from configuration. Both binaries build on it.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/database"
	"budget-reconciler/internal/models"
	"budget-reconciler/internal/repositories"
	"budget-reconciler/internal/services"
)

// NewLogger builds the process logger from LOG_FORMAT and LOG_LEVEL
func NewLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Source is a data source that also resolves its own category ids
type Source interface {
	services.DataSourceInterface
	services.CategoryDirectoryInterface
}

// NewSource picks the billing data source named by DATA_SOURCE
func NewSource(cfg *config.Config, metrics services.MetricsRecorderInterface, logger *slog.Logger) Source {
	if cfg.Engine.DataSource == models.DataSourceSample {
		return services.NewSampleDataSource(uint64(cfg.Engine.SampleSeed), cfg.Engine.AccountNames)
	}
	return services.NewOrganizzeService(cfg.Organizze, metrics, logger)
}

// NewCategorizerFactory returns the per-run categorizer for CATEGORY_MODE.
// Keyword mode loads its rules once; external mode asks the data source.
func NewCategorizerFactory(engine config.EngineConfig, directory services.CategoryDirectoryInterface) (services.CategorizerFactory, error) {
	if engine.CategoryMode == models.CategoryModeExternal {
		return func() services.CategorizerInterface {
			return services.NewDirectoryCategorizer(directory, models.CategoryOther)
		}, nil
	}

	ruleSet, err := config.LoadRuleSet(engine.RulesFile)
	if err != nil {
		return nil, fmt.Errorf("load category rules: %w", err)
	}
	return func() services.CategorizerInterface {
		return services.NewCategoryService(ruleSet)
	}, nil
}

// NewReconciliation wires the pipeline stages for one configuration
func NewReconciliation(cfg *config.Config, metrics services.MetricsRecorderInterface, logger *slog.Logger) (services.ReconciliationServiceInterface, error) {
	limits, err := config.LoadBudgetLimits(cfg.Engine.LimitsFile)
	if err != nil {
		return nil, fmt.Errorf("load budget limits: %w", err)
	}

	source := NewSource(cfg, metrics, logger)

	newCategorizer, err := NewCategorizerFactory(cfg.Engine, source)
	if err != nil {
		return nil, err
	}

	components := services.ReconciliationComponents{
		Source:         source,
		Locator:        services.NewInvoiceLocator(),
		Resolver:       services.NewCarryForwardResolver(cfg.Engine.CarryForwardMode, logger, metrics),
		Deduplicator:   services.NewDeduplicator(),
		NewCategorizer: newCategorizer,
		Projector:      services.NewBudgetProjector(),
		Metrics:        metrics,
	}
	if cfg.Engine.CollapseRecurringFees {
		components.FeeFilter = services.NewRecurringFeeFilter(cfg.Engine.RecurringFeeCategories)
	}

	return services.NewReconciliationService(cfg.Engine, limits, components, logger), nil
}

// Delivery holds the configured sinks and the resources they own
type Delivery struct {
	Dispatcher *services.ReportDispatcher
	DB         *database.DB
	ExportRepo repositories.ExportRepositoryInterface
	closers    []io.Closer
}

// Close releases the database pool and broker connections
func (d *Delivery) Close() error {
	var errs []error
	for i := len(d.closers) - 1; i >= 0; i-- {
		if err := d.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewDelivery opens every enabled exporter and notifier. Sinks that need a
// connection fail fast here rather than at dispatch time.
func NewDelivery(ctx context.Context, cfg *config.Config, metrics services.MetricsRecorderInterface, logger *slog.Logger) (*Delivery, error) {
	delivery := &Delivery{}
	var exporters []services.ExporterInterface
	var notifiers []services.NotifierInterface

	fail := func(err error) (*Delivery, error) {
		if closeErr := delivery.Close(); closeErr != nil {
			logger.Warn("failed to release delivery resources", "error", closeErr)
		}
		return nil, err
	}

	if cfg.Export.CSVEnabled {
		exporters = append(exporters, services.NewCSVExporter(cfg.Export.CSVDir))
	}

	if cfg.Export.DatabaseEnabled {
		db, err := database.Initialize(ctx, cfg, logger)
		if err != nil {
			return fail(fmt.Errorf("initialize export database: %w", err))
		}
		delivery.DB = db
		delivery.closers = append(delivery.closers, db)
		delivery.ExportRepo = repositories.NewExportRepository(db.DB)
		exporters = append(exporters, services.NewDatabaseExporter(delivery.ExportRepo, cfg.Export.DatabaseRetention, logger))
	}

	if cfg.Export.Sheets.Enabled {
		sheets, err := services.NewSheetsExporter(ctx, cfg.Export.Sheets)
		if err != nil {
			return fail(fmt.Errorf("initialize sheets exporter: %w", err))
		}
		exporters = append(exporters, sheets)
	}

	if cfg.Notify.SMTP.Enabled {
		notifiers = append(notifiers, services.NewEmailNotifier(cfg.Notify.SMTP))
	}

	if cfg.Notify.Telegram.Enabled {
		notifiers = append(notifiers, services.NewTelegramNotifier(cfg.Notify.Telegram))
	}

	if cfg.Notify.AMQP.Enabled {
		amqpNotifier, err := services.NewAMQPNotifier(cfg.Notify.AMQP, logger)
		if err != nil {
			return fail(fmt.Errorf("initialize amqp notifier: %w", err))
		}
		delivery.closers = append(delivery.closers, amqpNotifier)
		notifiers = append(notifiers, amqpNotifier)
	}

	delivery.Dispatcher = services.NewReportDispatcher(exporters, notifiers, metrics, logger)

	logger.Info("report delivery configured",
		"exporters", len(exporters),
		"notifiers", len(notifiers),
	)

	return delivery, nil
}
