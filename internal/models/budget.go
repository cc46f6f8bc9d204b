package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AggregateClass is the projection path a category took
type AggregateClass string

const (
	AggregateClassFixed       AggregateClass = "fixed"
	AggregateClassOverBudget  AggregateClass = "over_budget"
	AggregateClassUnderBudget AggregateClass = "under_budget"
)

// BudgetLimits holds the monthly base limit per category and the set of
// categories treated as fixed obligations.
type BudgetLimits struct {
	Base  map[string]decimal.Decimal `json:"base"`
	Fixed map[string]bool            `json:"fixed"`
}

// DefaultBudgetLimits returns the built-in monthly limits.
func DefaultBudgetLimits() BudgetLimits {
	return BudgetLimits{
		Base: map[string]decimal.Decimal{
			CategoryGroceries:     decimal.NewFromInt(800),
			CategoryAnnualFee:     decimal.NewFromInt(236),
			CategorySubscriptions: decimal.NewFromInt(450),
			CategoryBeauty:        decimal.NewFromInt(200),
			CategoryHome:          decimal.NewFromInt(500),
			CategoryShopping:      decimal.NewFromInt(800),
			CategoryLeisure:       decimal.NewFromInt(500),
			CategoryEducation:     decimal.NewFromInt(4250),
			CategorySports:        decimal.NewFromInt(50),
			CategoryOther:         decimal.NewFromInt(200),
			CategoryHealth:        decimal.NewFromInt(300),
			CategoryCarInsurance:  decimal.NewFromInt(403),
			CategoryTransport:     decimal.NewFromInt(1400),
			CategoryTravel:        decimal.NewFromInt(700),
		},
		Fixed: map[string]bool{
			CategoryCarInsurance:  true,
			CategoryEducation:     true,
			CategorySubscriptions: true,
			CategoryAnnualFee:     true,
		},
	}
}

// BaseFor returns the base limit of a category, zero when unbudgeted.
func (l BudgetLimits) BaseFor(category string) decimal.Decimal {
	if limit, ok := l.Base[category]; ok {
		return limit
	}
	return decimal.Zero
}

// IsFixed reports whether the category is a fixed obligation.
func (l BudgetLimits) IsFixed(category string) bool {
	return l.Fixed[category]
}

// Categories returns the budgeted categories sorted by name.
func (l BudgetLimits) Categories() []string {
	categories := make([]string, 0, len(l.Base))
	for category := range l.Base {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

// CategoryLimit is the per-run limit input of a category
type CategoryLimit struct {
	Category        string          `json:"category"`
	BaseLimit       decimal.Decimal `json:"base_limit"`
	ElapsedFraction decimal.Decimal `json:"elapsed_fraction"`
}

// CategoryAggregate is the projected budget position of one category
type CategoryAggregate struct {
	Category            string          `json:"category"`
	Class               AggregateClass  `json:"class"`
	TransactionCount    int             `json:"transaction_count"`
	Spent               decimal.Decimal `json:"spent"`
	BaseLimit           decimal.Decimal `json:"base_limit"`
	AdjustedLimit       decimal.Decimal `json:"adjusted_limit"`
	PercentUsed         decimal.Decimal `json:"percent_used"`
	ExpectedSpendToDate decimal.Decimal `json:"expected_spend_to_date"`
}

// ReportTotals sums a report across categories
type ReportTotals struct {
	Spent                decimal.Decimal `json:"spent"`
	BaseLimit            decimal.Decimal `json:"base_limit"`
	AdjustedLimit        decimal.Decimal `json:"adjusted_limit"`
	PercentUsed          decimal.Decimal `json:"percent_used"`
	ElapsedFraction      decimal.Decimal `json:"elapsed_fraction"`
	TransactionCount     int             `json:"transaction_count"`
	InstallmentCount     int             `json:"installment_count"`
	LastInstallmentCount int             `json:"last_installment_count"`
}

// CarryForwardWarning records an invoice whose transactions could not be
// fetched while recovering installments in lenient mode.
type CarryForwardWarning struct {
	AccountID int64  `json:"account_id"`
	InvoiceID int64  `json:"invoice_id"`
	Message   string `json:"message"`
	Err       error  `json:"-"`
}

// AccountSummary describes how one account contributed to a run
type AccountSummary struct {
	AccountID           int64     `json:"account_id"`
	Name                string    `json:"name"`
	ActiveInvoiceID     int64     `json:"active_invoice_id"`
	ActiveDueDate       time.Time `json:"active_due_date"`
	NativeCount         int       `json:"native_count"`
	CarriedForwardCount int       `json:"carried_forward_count"`
	ReconciledCount     int       `json:"reconciled_count"`
}

// BudgetReport is the complete, internally consistent output of one run
type BudgetReport struct {
	RunID        uuid.UUID                `json:"run_id"`
	GeneratedAt  time.Time                `json:"generated_at"`
	Today        time.Time                `json:"today"`
	RuleVersion  string                   `json:"rule_version"`
	Accounts     []AccountSummary         `json:"accounts"`
	Aggregates   []CategoryAggregate      `json:"aggregates"`
	Totals       ReportTotals             `json:"totals"`
	Transactions []CategorizedTransaction `json:"transactions"`
	Warnings     []CarryForwardWarning    `json:"warnings,omitempty"`
}
