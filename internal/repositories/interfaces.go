package repositories

import (
	"time"

	"budget-reconciler/internal/models"

	"github.com/google/uuid"
)

// ExportRepositoryInterface defines the contract for the flat export table
type ExportRepositoryInterface interface {
	// ReplaceRun deletes any rows already stored for runID and inserts rows
	// in a single database transaction
	ReplaceRun(runID uuid.UUID, rows []models.ExportRow) error
	GetByRunID(runID uuid.UUID) ([]models.ExportRow, error)
	GetByRunIDAndType(runID uuid.UUID, rowType string) ([]models.ExportRow, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}
