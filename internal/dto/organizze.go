package dto

import (
	"fmt"

	"budget-reconciler/internal/models"

	"github.com/shopspring/decimal"
)

// ---------- Credit Cards ----------

type OrganizzeCreditCard struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Network    string `json:"network"`
	ClosingDay int    `json:"closing_day"`
	DueDay     int    `json:"due_day"`
	Archived   bool   `json:"archived"`
}

func (c OrganizzeCreditCard) ToModel() models.Account {
	return models.Account{
		ID:         c.ID,
		Name:       c.Name,
		Network:    c.Network,
		ClosingDay: c.ClosingDay,
		DueDay:     c.DueDay,
	}
}

// ---------- Invoices ----------

type OrganizzeInvoice struct {
	ID           int64  `json:"id"`
	Date         string `json:"date"`
	StartingDate string `json:"starting_date"`
	ClosingDate  string `json:"closing_date"`
	AmountCents  int64  `json:"amount_cents"`
	CreditCardID int64  `json:"credit_card_id"`
}

func (i OrganizzeInvoice) ToModel(accountID int64) (models.Invoice, error) {
	due, err := models.ParseDate(i.Date)
	if err != nil {
		return models.Invoice{}, fmt.Errorf("invoice %d has invalid due date %q: %w", i.ID, i.Date, err)
	}
	return models.Invoice{ID: i.ID, AccountID: accountID, DueDate: due}, nil
}

// OrganizzeInvoiceDetail is the payload of a single invoice with its line items
type OrganizzeInvoiceDetail struct {
	OrganizzeInvoice
	Transactions []OrganizzeTransaction `json:"transactions"`
}

// ---------- Transactions ----------

type OrganizzeTransaction struct {
	ID                int64  `json:"id"`
	Description       string `json:"description"`
	Date              string `json:"date"`
	AmountCents       int64  `json:"amount_cents"`
	Installment       int    `json:"installment"`
	TotalInstallments int    `json:"total_installments"`
	CategoryID        *int64 `json:"category_id"`
	CreditCardID      *int64 `json:"credit_card_id"`
	InvoiceID         *int64 `json:"credit_card_invoice_id"`
}

// ToModel converts cents into a decimal amount and tags the row as native to invoiceID
func (t OrganizzeTransaction) ToModel(accountID, invoiceID int64) (models.Transaction, error) {
	occurred, err := models.ParseDate(t.Date)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %d has invalid date %q: %w", t.ID, t.Date, err)
	}

	index, count := t.Installment, t.TotalInstallments
	if count == 0 {
		index, count = 1, 1
	}

	tx := models.Transaction{
		ID:               t.ID,
		AccountID:        accountID,
		InvoiceID:        invoiceID,
		Description:      t.Description,
		OccurredDate:     occurred,
		Amount:           decimal.New(t.AmountCents, -2),
		InstallmentIndex: index,
		InstallmentCount: count,
		Provenance:       models.ProvenanceNative,
	}
	if t.CategoryID != nil {
		id := *t.CategoryID
		tx.CategoryID = &id
	}

	if err := tx.Validate(); err != nil {
		return models.Transaction{}, fmt.Errorf("transaction %d: %w", t.ID, err)
	}
	return tx, nil
}

// ---------- Categories ----------

type OrganizzeCategory struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	ParentID *int64 `json:"parent_id"`
}

// ---------- Errors ----------

type OrganizzeErrorResponse struct {
	Error  string            `json:"error"`
	Errors map[string]any    `json:"errors,omitempty"`
	Meta   map[string]string `json:"meta,omitempty"`
}
