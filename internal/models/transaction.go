package models

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Provenance tells whether a transaction came from the source as reported on
// its invoice or was recovered from an earlier invoice.
type Provenance string

const (
	ProvenanceNative         Provenance = "native"
	ProvenanceCarriedForward Provenance = "carried_forward"
)

var (
	ErrInvalidInstallment = errors.New("installment index must be between 1 and installment count")
	ErrMissingDate        = errors.New("transaction date is required")
)

// Transaction is a single credit card charge as billed on an invoice
type Transaction struct {
	ID               int64           `json:"id"`
	AccountID        int64           `json:"account_id"`
	InvoiceID        int64           `json:"invoice_id"`
	Description      string          `json:"description"`
	OccurredDate     time.Time       `json:"occurred_date"`
	Amount           decimal.Decimal `json:"amount"`
	InstallmentIndex int             `json:"installment_index"`
	InstallmentCount int             `json:"installment_count"`
	CategoryID       *int64          `json:"category_id,omitempty"`
	Provenance       Provenance      `json:"provenance"`
}

// Validate checks the installment invariant and required fields
func (t Transaction) Validate() error {
	if t.OccurredDate.IsZero() {
		return ErrMissingDate
	}
	if t.InstallmentCount < 1 || t.InstallmentIndex < 1 || t.InstallmentIndex > t.InstallmentCount {
		return ErrInvalidInstallment
	}
	return nil
}

// HasRemainingInstallments reports whether later installments are still to be billed.
func (t Transaction) HasRemainingInstallments() bool {
	return t.InstallmentCount > 1 && t.InstallmentIndex < t.InstallmentCount
}

// FinalInstallmentDate is the date the last installment is billed.
func (t Transaction) FinalInstallmentDate() time.Time {
	return AddMonths(t.OccurredDate, t.InstallmentCount-1)
}

// IsInInstallments reports whether the purchase is not yet on its last installment.
func (t Transaction) IsInInstallments() bool {
	return t.InstallmentIndex != t.InstallmentCount
}

// IsLastInstallment reports whether this is the last installment of a split purchase.
func (t Transaction) IsLastInstallment() bool {
	return t.InstallmentCount > 1 && t.InstallmentIndex == t.InstallmentCount
}

// CarriedForward returns a copy advanced by one cycle. The receiver is left untouched.
func (t Transaction) CarriedForward() Transaction {
	next := t
	next.InstallmentIndex = t.InstallmentIndex + 1
	next.Provenance = ProvenanceCarriedForward
	if t.CategoryID != nil {
		id := *t.CategoryID
		next.CategoryID = &id
	}
	return next
}

// BusinessKey identifies the same purchase across invoices.
type BusinessKey struct {
	Description string
	Date        string
	Amount      string
}

// Key returns the business key of the transaction. Amounts compare by value,
// so 100 and 100.00 produce the same key.
func (t Transaction) Key() BusinessKey {
	return BusinessKey{
		Description: t.Description,
		Date:        t.OccurredDate.Format(DateLayout),
		Amount:      t.Amount.String(),
	}
}

// CategorizedTransaction pairs a transaction with the category label assigned to it
type CategorizedTransaction struct {
	Transaction
	Category string `json:"category"`
}
