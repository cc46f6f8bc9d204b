package services

import (
	"context"
	"time"

	"budget-reconciler/internal/models"
)

// InvoiceLocatorInterface picks the invoice that bills the current cycle
type InvoiceLocatorInterface interface {
	LocateActive(invoices []models.Invoice, cutoverDay int, today time.Time) (models.Invoice, error)
}

// CarryForwardResolverInterface recovers installments of earlier purchases
// that the data source fails to list on the active invoice
type CarryForwardResolverInterface interface {
	Resolve(ctx context.Context, invoices []models.Invoice, active models.Invoice, fetch models.TransactionFetcher) (models.CarryForwardResult, error)
}

// DeduplicatorInterface merges native and carried-forward transactions
type DeduplicatorInterface interface {
	Dedupe(native, carriedForward []models.Transaction) []models.Transaction
}

// RecurringFeeFilterInterface collapses repeated fee charges after categorization
type RecurringFeeFilterInterface interface {
	Apply(transactions []models.CategorizedTransaction) []models.CategorizedTransaction
}

// CategorizerInterface assigns a budget category to a transaction
type CategorizerInterface interface {
	Categorize(ctx context.Context, tx models.Transaction) (string, error)
	Version() string
}

// CategorizerFactory builds a categorizer scoped to a single run
type CategorizerFactory func() CategorizerInterface

// BudgetProjectorInterface aggregates categorized spend and projects adjusted limits
type BudgetProjectorInterface interface {
	Project(transactions []models.CategorizedTransaction, limits models.BudgetLimits, cycleStartDay int, today time.Time) ([]models.CategoryAggregate, error)
	Totals(aggregates []models.CategoryAggregate, transactions []models.CategorizedTransaction, cycleStartDay int, today time.Time) models.ReportTotals
}

// DataSourceInterface reads accounts, invoices and invoice line items
type DataSourceInterface interface {
	ListAccounts(ctx context.Context) ([]models.Account, error)
	FetchInvoices(ctx context.Context, accountID int64, window models.DateRange) ([]models.Invoice, error)
	FetchInvoiceTransactions(ctx context.Context, accountID, invoiceID int64) ([]models.Transaction, error)
}

// CategoryDirectoryInterface resolves data source category ids to names
type CategoryDirectoryInterface interface {
	CategoryName(ctx context.Context, categoryID int64) (string, error)
}

// ExporterInterface writes a finished report to a sink
type ExporterInterface interface {
	Name() string
	Export(ctx context.Context, report *models.BudgetReport) error
}

// NotifierInterface delivers a report summary to a recipient channel
type NotifierInterface interface {
	Name() string
	Notify(ctx context.Context, report *models.BudgetReport) error
}

// ReconciliationServiceInterface runs the whole pipeline for one date
type ReconciliationServiceInterface interface {
	Run(ctx context.Context, today time.Time) (*models.BudgetReport, error)
}

// ReportDispatcherInterface hands a report to every configured exporter and notifier
type ReportDispatcherInterface interface {
	Dispatch(ctx context.Context, report *models.BudgetReport) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type TokenServiceInterface interface {
	GenerateToken(subject string) (string, time.Time, error)
	ValidateToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
