package dto

import (
	"time"

	"budget-reconciler/internal/models"
)

// RunReportRequest triggers a reconciliation run over HTTP
type RunReportRequest struct {
	Today  string `json:"today" validate:"iso_date"`
	DryRun bool   `json:"dry_run"`
}

// CategoryLine is one row of the budget table
type CategoryLine struct {
	Category      string `json:"category"`
	Class         string `json:"class"`
	Spent         string `json:"spent"`
	BaseLimit     string `json:"base_limit"`
	AdjustedLimit string `json:"adjusted_limit"`
	PercentUsed   string `json:"percent_used"`
	Transactions  int    `json:"transactions"`
}

type TotalsLine struct {
	Spent             string `json:"spent"`
	BaseLimit         string `json:"base_limit"`
	AdjustedLimit     string `json:"adjusted_limit"`
	PercentUsed       string `json:"percent_used"`
	ElapsedFraction   string `json:"elapsed_fraction"`
	Transactions      int    `json:"transactions"`
	InInstallments    int    `json:"in_installments"`
	OnLastInstallment int    `json:"on_last_installment"`
}

type AccountLine struct {
	AccountID       int64  `json:"account_id"`
	Name            string `json:"name"`
	ActiveInvoiceID int64  `json:"active_invoice_id"`
	ActiveDueDate   string `json:"active_due_date"`
	Native          int    `json:"native"`
	CarriedForward  int    `json:"carried_forward"`
	Reconciled      int    `json:"reconciled"`
}

// ReportSummary is the compact view of a report shared by the API response
// and the AMQP message body
type ReportSummary struct {
	RunID       string         `json:"run_id"`
	Today       string         `json:"today"`
	GeneratedAt time.Time      `json:"generated_at"`
	RuleVersion string         `json:"rule_version"`
	Accounts    []AccountLine  `json:"accounts"`
	Categories  []CategoryLine `json:"categories"`
	Totals      TotalsLine     `json:"totals"`
	Warnings    []string       `json:"warnings,omitempty"`
}

// RunReportResponse wraps the summary with the delivery outcome
type RunReportResponse struct {
	ReportSummary
	DryRun         bool     `json:"dry_run"`
	Delivered      bool     `json:"delivered"`
	DeliveryErrors []string `json:"delivery_errors,omitempty"`
}

// ExportRowsResponse lists the persisted rows of one run
type ExportRowsResponse struct {
	RunID string             `json:"run_id"`
	Rows  []models.ExportRow `json:"rows"`
	Count int                `json:"count"`
}

func NewReportSummary(report *models.BudgetReport) ReportSummary {
	summary := ReportSummary{
		RunID:       report.RunID.String(),
		Today:       report.Today.Format(models.DateLayout),
		GeneratedAt: report.GeneratedAt,
		RuleVersion: report.RuleVersion,
		Accounts:    make([]AccountLine, 0, len(report.Accounts)),
		Categories:  make([]CategoryLine, 0, len(report.Aggregates)),
		Totals: TotalsLine{
			Spent:             report.Totals.Spent.StringFixed(2),
			BaseLimit:         report.Totals.BaseLimit.StringFixed(2),
			AdjustedLimit:     report.Totals.AdjustedLimit.StringFixed(2),
			PercentUsed:       report.Totals.PercentUsed.StringFixed(2),
			ElapsedFraction:   report.Totals.ElapsedFraction.StringFixed(4),
			Transactions:      report.Totals.TransactionCount,
			InInstallments:    report.Totals.InstallmentCount,
			OnLastInstallment: report.Totals.LastInstallmentCount,
		},
	}

	for _, account := range report.Accounts {
		summary.Accounts = append(summary.Accounts, AccountLine{
			AccountID:       account.AccountID,
			Name:            account.Name,
			ActiveInvoiceID: account.ActiveInvoiceID,
			ActiveDueDate:   account.ActiveDueDate.Format(models.DateLayout),
			Native:          account.NativeCount,
			CarriedForward:  account.CarriedForwardCount,
			Reconciled:      account.ReconciledCount,
		})
	}

	for _, agg := range report.Aggregates {
		summary.Categories = append(summary.Categories, CategoryLine{
			Category:      agg.Category,
			Class:         string(agg.Class),
			Spent:         agg.Spent.StringFixed(2),
			BaseLimit:     agg.BaseLimit.StringFixed(2),
			AdjustedLimit: agg.AdjustedLimit.StringFixed(2),
			PercentUsed:   agg.PercentUsed.StringFixed(2),
			Transactions:  agg.TransactionCount,
		})
	}

	for _, warning := range report.Warnings {
		summary.Warnings = append(summary.Warnings, warning.Message)
	}

	return summary
}
