package app

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/models"
	"budget-reconciler/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func sampleConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Engine: config.EngineConfig{
			DataSource:             models.DataSourceSample,
			CutoverDay:             10,
			CycleStartDay:          1,
			LookbackDays:           365,
			LookaheadDays:          60,
			CarryForwardEnabled:    true,
			CarryForwardMode:       models.CarryForwardLenient,
			CollapseRecurringFees:  true,
			RecurringFeeCategories: []string{models.CategoryAnnualFee},
			MaxParallelAccounts:    2,
			CategoryMode:           models.CategoryModeKeyword,
			ExcludedDescriptions:   []string{"deb._autom._de_fatura"},
			SampleSeed:             7,
		},
		Export: config.ExportConfig{
			CSVEnabled: true,
			CSVDir:     t.TempDir(),
		},
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "run_id", "abc")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
	assert.Contains(t, buf.String(), `"run_id":"abc"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewSource(t *testing.T) {
	cfg := sampleConfig(t)

	_, isSample := NewSource(cfg, nil, discardLogger()).(*services.SampleDataSource)
	assert.True(t, isSample)

	cfg.Engine.DataSource = models.DataSourceOrganizze
	cfg.Organizze.BaseURL = "http://127.0.0.1:1"
	_, isOrganizze := NewSource(cfg, nil, discardLogger()).(*services.OrganizzeService)
	assert.True(t, isOrganizze)
}

func TestNewCategorizerFactory(t *testing.T) {
	cfg := sampleConfig(t)
	source := NewSource(cfg, nil, discardLogger())

	keyword, err := NewCategorizerFactory(cfg.Engine, source)
	require.NoError(t, err)
	assert.NotEqual(t, "external", keyword().Version())

	cfg.Engine.CategoryMode = models.CategoryModeExternal
	external, err := NewCategorizerFactory(cfg.Engine, source)
	require.NoError(t, err)
	assert.Equal(t, "external", external().Version())

	cfg.Engine.CategoryMode = models.CategoryModeKeyword
	cfg.Engine.RulesFile = filepath.Join(t.TempDir(), "missing.yaml")
	_, err = NewCategorizerFactory(cfg.Engine, source)
	assert.Error(t, err)
}

func TestNewReconciliation_MissingLimitsFile(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Engine.LimitsFile = filepath.Join(t.TempDir(), "limits.toml")

	_, err := NewReconciliation(cfg, nil, discardLogger())

	assert.ErrorContains(t, err, "load budget limits")
}

func TestSampleRunDeliversCSV(t *testing.T) {
	ctx := context.Background()
	cfg := sampleConfig(t)

	reconciliation, err := NewReconciliation(cfg, nil, discardLogger())
	require.NoError(t, err)

	delivery, err := NewDelivery(ctx, cfg, nil, discardLogger())
	require.NoError(t, err)
	defer delivery.Close()
	assert.Nil(t, delivery.DB)
	assert.Nil(t, delivery.ExportRepo)

	report, err := reconciliation.Run(ctx, models.Date(2024, time.March, 15))
	require.NoError(t, err)
	require.NoError(t, delivery.Dispatcher.Dispatch(ctx, report))

	for _, name := range []string{services.TransactionsCSVFile, services.CategoriesCSVFile} {
		info, err := os.Stat(filepath.Join(cfg.Export.CSVDir, name))
		require.NoError(t, err)
		assert.Positive(t, info.Size())
	}
}

func TestNewDelivery_FailsFastOnBrokenSink(t *testing.T) {
	cfg := sampleConfig(t)
	cfg.Export.Sheets = config.SheetsConfig{Enabled: true}

	_, err := NewDelivery(context.Background(), cfg, nil, discardLogger())

	assert.ErrorContains(t, err, "initialize sheets exporter")
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }

func TestDeliveryClose_ReverseOrder(t *testing.T) {
	var order []string
	delivery := &Delivery{closers: []io.Closer{
		closerFunc(func() error { order = append(order, "db"); return nil }),
		closerFunc(func() error { order = append(order, "amqp"); return assert.AnError }),
	}}

	err := delivery.Close()

	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, []string{"amqp", "db"}, order)
}
