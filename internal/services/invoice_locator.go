package services

import (
	"fmt"
	"time"

	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"
)

type InvoiceLocator struct{}

func NewInvoiceLocator() InvoiceLocatorInterface {
	return &InvoiceLocator{}
}

// ReferenceMonth returns the month whose invoice is active on today. Up to
// and including the cutover day the current month's invoice is still open;
// after it the next month's invoice takes over.
func ReferenceMonth(cutoverDay int, today time.Time) (int, time.Month) {
	if today.Day() <= cutoverDay {
		return today.Year(), today.Month()
	}
	next := models.Date(today.Year(), today.Month(), 1).AddDate(0, 1, 0)
	return next.Year(), next.Month()
}

// LocateActive returns the single invoice due in the reference month
func (l *InvoiceLocator) LocateActive(invoices []models.Invoice, cutoverDay int, today time.Time) (models.Invoice, error) {
	year, month := ReferenceMonth(cutoverDay, today)

	if len(invoices) == 0 {
		return models.Invoice{}, fmt.Errorf("no invoices to choose from for %d-%02d: %w", year, month, apierrors.ErrNotFound)
	}

	var matches []models.Invoice
	for _, invoice := range invoices {
		if invoice.DueIn(year, month) {
			matches = append(matches, invoice)
		}
	}

	switch len(matches) {
	case 0:
		return models.Invoice{}, fmt.Errorf("no invoice due in %d-%02d: %w", year, month, apierrors.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return models.Invoice{}, fmt.Errorf("%d invoices due in %d-%02d (ids %d and %d): %w",
			len(matches), year, month, matches[0].ID, matches[1].ID, apierrors.ErrInvariantViolation)
	}
}
