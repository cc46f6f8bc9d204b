package repositories

import (
	"errors"
	"fmt"
	"time"

	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const exportBatchSize = 200

// ExportRepository handles database operations for export rows
type ExportRepository struct {
	db *gorm.DB
}

// NewExportRepository creates a new export repository
func NewExportRepository(db *gorm.DB) ExportRepositoryInterface {
	return &ExportRepository{
		db: db,
	}
}

func (r *ExportRepository) ReplaceRun(runID uuid.UUID, rows []models.ExportRow) error {
	if runID == uuid.Nil {
		return errors.New("run id cannot be empty")
	}

	for i := range rows {
		if rows[i].RunID != runID {
			return fmt.Errorf("row %d belongs to run %s, not %s", i, rows[i].RunID, runID)
		}
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("run_id = ?", runID).Delete(&models.ExportRow{}).Error; err != nil {
			return fmt.Errorf("failed to delete previous export rows: %w", err)
		}

		if len(rows) == 0 {
			return nil
		}

		if err := tx.CreateInBatches(rows, exportBatchSize).Error; err != nil {
			return fmt.Errorf("failed to insert export rows: %w", err)
		}

		return nil
	})
}

// GetByRunID returns transaction rows followed by category rows of a run
func (r *ExportRepository) GetByRunID(runID uuid.UUID) ([]models.ExportRow, error) {
	var rows []models.ExportRow

	if err := r.db.Where("run_id = ?", runID).
		Order("row_type DESC").
		Order("account_id").
		Order("occurred_date").
		Order("category").
		Order("description").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get export rows: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("export run %s: %w", runID, apierrors.ErrNotFound)
	}

	return rows, nil
}

func (r *ExportRepository) GetByRunIDAndType(runID uuid.UUID, rowType string) ([]models.ExportRow, error) {
	var rows []models.ExportRow

	if err := r.db.Where("run_id = ? AND row_type = ?", runID, rowType).
		Order("category").
		Order("occurred_date").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to get export rows by type: %w", err)
	}

	return rows, nil
}

// DeleteOlderThan removes export rows older than the specified duration
func (r *ExportRepository) DeleteOlderThan(duration time.Duration) (int64, error) {
	cutoffTime := time.Now().UTC().Add(-duration)

	result := r.db.Where("created_at < ?", cutoffTime).Delete(&models.ExportRow{})

	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete old export rows: %w", result.Error)
	}

	return result.RowsAffected, nil
}
