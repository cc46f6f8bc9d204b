package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"budget-reconciler/internal/models"
)

type CarryForwardResolver struct {
	mode    models.CarryForwardMode
	logger  *slog.Logger
	metrics MetricsRecorderInterface
}

func NewCarryForwardResolver(mode models.CarryForwardMode, logger *slog.Logger, metrics MetricsRecorderInterface) CarryForwardResolverInterface {
	if mode == "" {
		mode = models.CarryForwardLenient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CarryForwardResolver{
		mode:    mode,
		logger:  logger,
		metrics: metrics,
	}
}

// Resolve scans every invoice except the active one for purchases whose
// installment plan still covers the active due date and returns them
// advanced by one installment.
func (r *CarryForwardResolver) Resolve(ctx context.Context, invoices []models.Invoice, active models.Invoice, fetch models.TransactionFetcher) (models.CarryForwardResult, error) {
	var result models.CarryForwardResult

	ordered := make([]models.Invoice, 0, len(invoices))
	for _, invoice := range invoices {
		if invoice.ID != active.ID {
			ordered = append(ordered, invoice)
		}
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].ID < ordered[j].ID })

	for _, invoice := range ordered {
		if err := ctx.Err(); err != nil {
			return models.CarryForwardResult{}, err
		}

		transactions, err := fetch(ctx, invoice)
		if err != nil {
			if r.mode == models.CarryForwardStrict {
				return models.CarryForwardResult{}, fmt.Errorf("failed to fetch transactions of invoice %d: %w", invoice.ID, err)
			}

			r.logger.Warn("skipping invoice during carry-forward",
				"account_id", invoice.AccountID,
				"invoice_id", invoice.ID,
				"error", err,
			)
			r.increment("carry_forward.warning")
			result.Warnings = append(result.Warnings, models.CarryForwardWarning{
				AccountID: invoice.AccountID,
				InvoiceID: invoice.ID,
				Message:   err.Error(),
				Err:       err,
			})
			continue
		}

		for _, tx := range transactions {
			if !coversDueDate(tx, active) {
				continue
			}
			result.Transactions = append(result.Transactions, tx.CarriedForward())
		}
	}

	sortTransactions(result.Transactions)

	r.logger.Debug("carry-forward resolved",
		"account_id", active.AccountID,
		"invoice_id", active.ID,
		"scanned_invoices", len(ordered),
		"carried_forward", len(result.Transactions),
		"warnings", len(result.Warnings),
	)

	return result, nil
}

// coversDueDate reports whether tx still has installments left and its plan
// spans the due date of the active invoice.
func coversDueDate(tx models.Transaction, active models.Invoice) bool {
	if !tx.HasRemainingInstallments() {
		return false
	}
	if active.DueDate.Before(tx.OccurredDate) {
		return false
	}
	return !active.DueDate.After(tx.FinalInstallmentDate())
}

func (r *CarryForwardResolver) increment(name string) {
	if r.metrics != nil {
		r.metrics.IncrementCounter(name, nil)
	}
}

// sortTransactions orders transactions by date, description, amount and id
func sortTransactions(transactions []models.Transaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if !a.OccurredDate.Equal(b.OccurredDate) {
			return a.OccurredDate.Before(b.OccurredDate)
		}
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		if cmp := a.Amount.Cmp(b.Amount); cmp != 0 {
			return cmp < 0
		}
		if a.InstallmentIndex != b.InstallmentIndex {
			return a.InstallmentIndex < b.InstallmentIndex
		}
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.InvoiceID < b.InvoiceID
	})
}
