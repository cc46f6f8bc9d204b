package services

import (
	"budget-reconciler/internal/models"
)

type Deduplicator struct{}

func NewDeduplicator() DeduplicatorInterface {
	return &Deduplicator{}
}

// Dedupe keeps one transaction per business key: the one with the highest
// installment index. Equal indexes prefer native rows, then the lowest id.
// The result is sorted, so input order never changes the output.
func (d *Deduplicator) Dedupe(native, carriedForward []models.Transaction) []models.Transaction {
	kept := make(map[models.BusinessKey]models.Transaction, len(native)+len(carriedForward))

	for _, group := range [][]models.Transaction{native, carriedForward} {
		for _, tx := range group {
			key := tx.Key()
			current, exists := kept[key]
			if !exists || supersedes(tx, current) {
				kept[key] = tx
			}
		}
	}

	result := make([]models.Transaction, 0, len(kept))
	for _, tx := range kept {
		result = append(result, tx)
	}
	sortTransactions(result)
	return result
}

// supersedes reports whether candidate should replace current for the same key
func supersedes(candidate, current models.Transaction) bool {
	if candidate.InstallmentIndex != current.InstallmentIndex {
		return candidate.InstallmentIndex > current.InstallmentIndex
	}
	if candidate.Provenance != current.Provenance {
		return candidate.Provenance == models.ProvenanceNative
	}
	if candidate.ID != current.ID {
		return candidate.ID < current.ID
	}
	if candidate.InvoiceID != current.InvoiceID {
		return candidate.InvoiceID < current.InvoiceID
	}
	if candidate.InstallmentCount != current.InstallmentCount {
		return candidate.InstallmentCount > current.InstallmentCount
	}
	return candidate.AccountID < current.AccountID
}
