package models

import (
	"context"
	"time"
)

// Account is a credit card registered at the data source.
type Account struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Network    string `json:"network,omitempty"`
	ClosingDay int    `json:"closing_day,omitempty"`
	DueDay     int    `json:"due_day,omitempty"`
}

// Invoice is one billing cycle statement of an account. Within an account
// invoices are totally ordered by id and by due date.
type Invoice struct {
	ID        int64     `json:"id"`
	AccountID int64     `json:"account_id"`
	DueDate   time.Time `json:"due_date"`
}

// DueIn reports whether the invoice is due in the given year and month.
func (i Invoice) DueIn(year int, month time.Month) bool {
	return i.DueDate.Year() == year && i.DueDate.Month() == month
}

// TransactionFetcher loads the line items of one invoice
type TransactionFetcher func(ctx context.Context, invoice Invoice) ([]Transaction, error)

// CarryForwardResult holds recovered installments and the invoices whose
// transactions could not be read
type CarryForwardResult struct {
	Transactions []Transaction         `json:"transactions"`
	Warnings     []CarryForwardWarning `json:"warnings,omitempty"`
}
