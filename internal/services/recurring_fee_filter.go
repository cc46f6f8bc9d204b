package services

import (
	"budget-reconciler/internal/models"
)

type RecurringFeeFilter struct {
	categories map[string]bool
}

// NewRecurringFeeFilter collapses repeated charges in the given fee categories
func NewRecurringFeeFilter(categories []string) RecurringFeeFilterInterface {
	set := make(map[string]bool, len(categories))
	for _, category := range categories {
		set[category] = true
	}
	return &RecurringFeeFilter{categories: set}
}

type feeKey struct {
	accountID   int64
	category    string
	description string
}

// Apply keeps, for each account, fee category and normalized description,
// only the charge with the most recent date (ties: highest id). Transactions
// outside the fee categories pass through unchanged and in order.
func (f *RecurringFeeFilter) Apply(transactions []models.CategorizedTransaction) []models.CategorizedTransaction {
	latest := make(map[feeKey]int)
	for i, tx := range transactions {
		if !f.categories[tx.Category] {
			continue
		}
		key := feeKey{tx.AccountID, tx.Category, models.NormalizeDescription(tx.Description)}
		current, ok := latest[key]
		if !ok || newerFee(tx, transactions[current]) {
			latest[key] = i
		}
	}

	keep := make(map[int]bool, len(latest))
	for _, i := range latest {
		keep[i] = true
	}

	result := make([]models.CategorizedTransaction, 0, len(transactions))
	for i, tx := range transactions {
		if f.categories[tx.Category] && !keep[i] {
			continue
		}
		result = append(result, tx)
	}
	return result
}

func newerFee(candidate, current models.CategorizedTransaction) bool {
	if !candidate.OccurredDate.Equal(current.OccurredDate) {
		return candidate.OccurredDate.After(current.OccurredDate)
	}
	if candidate.ID != current.ID {
		return candidate.ID > current.ID
	}
	return candidate.InstallmentIndex > current.InstallmentIndex
}
