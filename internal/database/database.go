package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"budget-reconciler/internal/config"
	"budget-reconciler/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// exportIndexes mirrors the indexes of db/migrations for the AutoMigrate path
var exportIndexes = []string{
	"CREATE INDEX IF NOT EXISTS idx_export_rows_run_id ON export_rows(run_id)",
	"CREATE INDEX IF NOT EXISTS idx_export_rows_run_category ON export_rows(run_id, category)",
	"CREATE INDEX IF NOT EXISTS idx_export_rows_created_at ON export_rows(created_at)",
}

// DB is the gorm handle behind the database exporter
type DB struct {
	*gorm.DB
}

// Open connects to PostgreSQL and sizes the connection pool
func Open(ctx context.Context, cfg config.DatabaseConfig) (*DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// AutoMigrate creates export_rows and its indexes from the gorm model
func (db *DB) AutoMigrate() error {
	if err := db.DB.AutoMigrate(&models.ExportRow{}); err != nil {
		return err
	}
	for _, stmt := range exportIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create index: %w", err)
		}
	}
	return nil
}

// Ping checks the connection
func (db *DB) Ping(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Initialize opens the export database and brings its schema up to date.
// When the migration runner fails the schema is created by AutoMigrate.
func Initialize(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*DB, error) {
	db, err := Open(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(ctx, sqlDB, cfg.Database, logger); err != nil {
		logger.Warn("migration runner failed, falling back to GORM AutoMigrate", "error", err)

		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	logger.Info("export database initialized", "host", cfg.Database.Host, "database", cfg.Database.Name)
	return db, nil
}
