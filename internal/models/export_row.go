package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ExportRowTypeTransaction = "transaction"
	ExportRowTypeCategory    = "category"
)

// ExportRow is one line of the flat per-run export table. Transaction rows
// carry the transaction columns, category rows carry the budget columns.
type ExportRow struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	RunID            uuid.UUID       `gorm:"type:uuid;not null;index" json:"run_id"`
	RowType          string          `gorm:"type:varchar(20);not null" json:"row_type"`
	AccountID        int64           `json:"account_id,omitempty"`
	Description      string          `gorm:"type:text" json:"description,omitempty"`
	OccurredDate     *time.Time      `gorm:"type:date" json:"occurred_date,omitempty"`
	Amount           decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"amount"`
	InstallmentIndex int             `json:"installment_index,omitempty"`
	InstallmentCount int             `json:"installment_count,omitempty"`
	Provenance       string          `gorm:"type:varchar(20)" json:"provenance,omitempty"`
	Category         string          `gorm:"type:varchar(100);not null" json:"category"`
	BaseLimit        decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"base_limit"`
	AdjustedLimit    decimal.Decimal `gorm:"type:decimal(14,2);default:0" json:"adjusted_limit"`
	PercentUsed      decimal.Decimal `gorm:"type:decimal(8,2);default:0" json:"percent_used"`
	CreatedAt        time.Time       `gorm:"not null" json:"created_at"`
}

// TableName specifies the table name for GORM
func (ExportRow) TableName() string {
	return "export_rows"
}

// BeforeCreate hook for ExportRow
func (r *ExportRow) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	}
	return nil
}

// NewExportRows flattens a report into transaction rows followed by category rows.
func NewExportRows(report *BudgetReport) []ExportRow {
	rows := make([]ExportRow, 0, len(report.Transactions)+len(report.Aggregates))

	for _, tx := range report.Transactions {
		occurred := tx.OccurredDate
		rows = append(rows, ExportRow{
			RunID:            report.RunID,
			RowType:          ExportRowTypeTransaction,
			AccountID:        tx.AccountID,
			Description:      tx.Description,
			OccurredDate:     &occurred,
			Amount:           tx.Amount,
			InstallmentIndex: tx.InstallmentIndex,
			InstallmentCount: tx.InstallmentCount,
			Provenance:       string(tx.Provenance),
			Category:         tx.Category,
		})
	}

	for _, agg := range report.Aggregates {
		rows = append(rows, ExportRow{
			RunID:         report.RunID,
			RowType:       ExportRowTypeCategory,
			Amount:        agg.Spent,
			Category:      agg.Category,
			BaseLimit:     agg.BaseLimit,
			AdjustedLimit: agg.AdjustedLimit,
			PercentUsed:   agg.PercentUsed,
		})
	}

	return rows
}
