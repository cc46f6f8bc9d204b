package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"budget-reconciler/internal/config"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sethvargo/go-retry"
)

const defaultMigrationsPath = "db/migrations"

var (
	readinessAttempts = 30
	readinessInterval = 2 * time.Second
)

// ErrMigrationsNotFound is returned when the migrations directory is missing
var ErrMigrationsNotFound = errors.New("migrations directory not found")

// MigrationRunner applies db/migrations with golang-migrate
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	logger         *slog.Logger
}

// NewMigrationRunner creates a runner. An empty path falls back to db/migrations.
func NewMigrationRunner(db *sql.DB, path string, logger *slog.Logger) *MigrationRunner {
	if path == "" {
		path = defaultMigrationsPath
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &MigrationRunner{
		db:             db,
		migrationsPath: path,
		logger:         logger.With("component", "migrator"),
	}
}

// WaitForDatabase pings until the database answers, readinessAttempts times
// at most.
func (mr *MigrationRunner) WaitForDatabase(ctx context.Context) error {
	attempt := 0
	backoff := retry.WithMaxRetries(uint64(max(readinessAttempts-1, 0)), retry.NewConstant(readinessInterval))

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		if err := mr.db.PingContext(ctx); err != nil {
			mr.logger.Warn("database not ready", "attempt", attempt, "max_attempts", readinessAttempts, "error", err)
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("database not ready after %d attempts: %w", attempt, err)
	}
	return nil
}

// RunMigrations applies every pending migration. A dirty version is forced
// before going up. A missing directory is skipped.
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		mr.logger.Warn("migrations directory not found, skipping", "path", mr.migrationsPath)
		return nil
	}

	m, err := mr.migrator()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}
	if dirty {
		mr.logger.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.logger.Info("export schema up to date", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if newVersion, _, err := m.Version(); err == nil {
		mr.logger.Info("applied migrations", "version", newVersion)
	}
	return nil
}

// Version reports the applied migration version
func (mr *MigrationRunner) Version() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, fmt.Errorf("%w: %s", ErrMigrationsNotFound, mr.migrationsPath)
	}

	m, err := mr.migrator()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

func (mr *MigrationRunner) migrator() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}
	return m, nil
}

// RunMigrationsIfEnabled waits for the database and migrates it when
// AUTO_MIGRATE is set.
func RunMigrationsIfEnabled(ctx context.Context, db *sql.DB, cfg config.DatabaseConfig, logger *slog.Logger) error {
	if !cfg.AutoMigrate {
		return nil
	}

	runner := NewMigrationRunner(db, cfg.MigrationsPath, logger)

	if err := runner.WaitForDatabase(ctx); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}
	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}
	return nil
}
