package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"budget-reconciler/internal/config"
	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ReconciliationComponents are the pipeline stages a reconciliation run is built from
type ReconciliationComponents struct {
	Source         DataSourceInterface
	Locator        InvoiceLocatorInterface
	Resolver       CarryForwardResolverInterface
	Deduplicator   DeduplicatorInterface
	FeeFilter      RecurringFeeFilterInterface
	NewCategorizer CategorizerFactory
	Projector      BudgetProjectorInterface
	Metrics        MetricsRecorderInterface
}

type ReconciliationService struct {
	engine     config.EngineConfig
	limits     models.BudgetLimits
	components ReconciliationComponents
	exclusions []string
	logger     *slog.Logger
	now        func() time.Time
}

// accountResult is what one account contributes to a run
type accountResult struct {
	summary      models.AccountSummary
	transactions []models.Transaction
	warnings     []models.CarryForwardWarning
}

func NewReconciliationService(
	engine config.EngineConfig,
	limits models.BudgetLimits,
	components ReconciliationComponents,
	logger *slog.Logger,
) ReconciliationServiceInterface {
	if logger == nil {
		logger = slog.Default()
	}
	if components.Metrics == nil {
		components.Metrics = NoopMetrics{}
	}

	exclusions := make([]string, 0, len(engine.ExcludedDescriptions))
	for _, pattern := range engine.ExcludedDescriptions {
		if normalized := models.NormalizeDescription(strings.TrimSpace(pattern)); normalized != "" {
			exclusions = append(exclusions, normalized)
		}
	}

	return &ReconciliationService{
		engine:     engine,
		limits:     limits,
		components: components,
		exclusions: exclusions,
		logger:     logger,
		now:        time.Now,
	}
}

// Run reconciles every selected account for today and projects the budget.
// Any account failure fails the whole run and no report is returned.
func (s *ReconciliationService) Run(ctx context.Context, today time.Time) (*models.BudgetReport, error) {
	start := s.now()
	runID := uuid.New()
	today = models.TruncateToDate(today)
	logger := s.logger.With(slog.String("run_id", runID.String()))

	logger.Info("starting reconciliation run",
		slog.String("today", today.Format(models.DateLayout)),
		slog.Int("cutover_day", s.engine.CutoverDay),
		slog.Bool("carry_forward", s.engine.CarryForwardEnabled),
	)

	report, err := s.run(ctx, logger, runID, today)
	s.components.Metrics.RecordProcessingTime("reconciliation.run", s.now().Sub(start))
	if err != nil {
		s.components.Metrics.IncrementCounter("reconciliation.run", map[string]string{
			"status": "failed",
			"reason": string(apierrors.CodeFor(err)),
		})
		logger.Error("reconciliation run failed", slog.String("error", err.Error()))
		return nil, err
	}

	s.components.Metrics.IncrementCounter("reconciliation.run", map[string]string{"status": "success"})
	s.components.Metrics.RecordGauge("reconciliation.transactions", float64(len(report.Transactions)), nil)
	s.components.Metrics.RecordGauge("reconciliation.warnings", float64(len(report.Warnings)), nil)

	logger.Info("reconciliation run completed",
		slog.Int("accounts", len(report.Accounts)),
		slog.Int("transactions", len(report.Transactions)),
		slog.Int("warnings", len(report.Warnings)),
		slog.String("spent", report.Totals.Spent.StringFixed(2)),
		slog.Duration("duration", s.now().Sub(start)),
	)

	return report, nil
}

func (s *ReconciliationService) run(ctx context.Context, logger *slog.Logger, runID uuid.UUID, today time.Time) (*models.BudgetReport, error) {
	accounts, err := s.selectAccounts(ctx)
	if err != nil {
		return nil, err
	}

	window := models.NewDateRange(today, s.engine.LookbackDays, s.engine.LookaheadDays)
	results := make([]accountResult, len(accounts))

	g, gctx := errgroup.WithContext(ctx)
	if s.engine.MaxParallelAccounts > 0 {
		g.SetLimit(s.engine.MaxParallelAccounts)
	}
	for i, account := range accounts {
		g.Go(func() error {
			result, err := s.reconcileAccount(gctx, logger, account, window, today)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &models.BudgetReport{
		RunID:       runID,
		GeneratedAt: s.now().UTC(),
		Today:       today,
	}

	var merged []models.Transaction
	for _, result := range results {
		report.Accounts = append(report.Accounts, result.summary)
		report.Warnings = append(report.Warnings, result.warnings...)
		merged = append(merged, result.transactions...)
	}

	categorizer := s.components.NewCategorizer()
	report.RuleVersion = categorizer.Version()

	categorizedTxs := make([]models.CategorizedTransaction, 0, len(merged))
	excluded := 0
	for _, tx := range merged {
		if s.isExcluded(tx.Description) {
			excluded++
			continue
		}
		category, err := categorizer.Categorize(ctx, tx)
		if err != nil {
			return nil, apierrors.NewEngineError("categorize", tx.AccountID, err)
		}
		categorizedTxs = append(categorizedTxs, models.CategorizedTransaction{Transaction: tx, Category: category})
	}
	if excluded > 0 {
		logger.Debug("excluded invoice payment rows", slog.Int("count", excluded))
	}

	if s.engine.CollapseRecurringFees && s.components.FeeFilter != nil {
		before := len(categorizedTxs)
		categorizedTxs = s.components.FeeFilter.Apply(categorizedTxs)
		logger.Debug("collapsed recurring fees", slog.Int("removed", before-len(categorizedTxs)))
	}
	sortCategorized(categorizedTxs)

	aggregates, err := s.components.Projector.Project(categorizedTxs, s.limits, s.engine.CycleStartDay, today)
	if err != nil {
		return nil, fmt.Errorf("failed to project budget: %w", err)
	}

	report.Transactions = categorizedTxs
	report.Aggregates = aggregates
	report.Totals = s.components.Projector.Totals(aggregates, categorizedTxs, s.engine.CycleStartDay, today)

	return report, nil
}

// selectAccounts lists the accounts and keeps the configured ones, sorted by id
func (s *ReconciliationService) selectAccounts(ctx context.Context) ([]models.Account, error) {
	accounts, err := s.components.Source.ListAccounts(ctx)
	if err != nil {
		return nil, apierrors.NewEngineError("list accounts", 0, err)
	}

	if len(s.engine.AccountNames) > 0 {
		byName := make(map[string]models.Account, len(accounts))
		for _, account := range accounts {
			byName[account.Name] = account
		}

		selected := make([]models.Account, 0, len(s.engine.AccountNames))
		for _, name := range s.engine.AccountNames {
			account, ok := byName[name]
			if !ok {
				return nil, apierrors.NewEngineError("select accounts", 0,
					fmt.Errorf("account %q: %w", name, apierrors.ErrNotFound))
			}
			selected = append(selected, account)
		}
		accounts = selected
	}

	if len(accounts) == 0 {
		return nil, apierrors.NewEngineError("select accounts", 0, fmt.Errorf("no accounts: %w", apierrors.ErrNotFound))
	}

	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// reconcileAccount runs invoice location, carry-forward and deduplication for one account
func (s *ReconciliationService) reconcileAccount(ctx context.Context, logger *slog.Logger, account models.Account, window models.DateRange, today time.Time) (accountResult, error) {
	logger = logger.With(slog.Int64("account_id", account.ID))

	invoices, err := s.components.Source.FetchInvoices(ctx, account.ID, window)
	if err != nil {
		return accountResult{}, apierrors.NewEngineError("fetch invoices", account.ID, err)
	}

	active, err := s.components.Locator.LocateActive(invoices, s.engine.CutoverDay, today)
	if err != nil {
		return accountResult{}, apierrors.NewEngineError("locate active invoice", account.ID, err)
	}
	logger = logger.With(slog.Int64("invoice_id", active.ID))

	native, err := s.components.Source.FetchInvoiceTransactions(ctx, account.ID, active.ID)
	if err != nil {
		return accountResult{}, apierrors.NewEngineError("fetch active invoice transactions", account.ID, err)
	}

	var carried models.CarryForwardResult
	if s.engine.CarryForwardEnabled {
		fetch := func(ctx context.Context, invoice models.Invoice) ([]models.Transaction, error) {
			return s.components.Source.FetchInvoiceTransactions(ctx, account.ID, invoice.ID)
		}
		carried, err = s.components.Resolver.Resolve(ctx, invoices, active, fetch)
		if err != nil {
			return accountResult{}, apierrors.NewEngineError("carry forward installments", account.ID, err)
		}
	}

	reconciled := s.components.Deduplicator.Dedupe(native, carried.Transactions)
	for _, tx := range reconciled {
		if err := tx.Validate(); err != nil {
			return accountResult{}, apierrors.NewEngineError("reconcile", account.ID,
				fmt.Errorf("transaction %d: %v: %w", tx.ID, err, apierrors.ErrInvariantViolation))
		}
	}

	summary := models.AccountSummary{
		AccountID:           account.ID,
		Name:                account.Name,
		ActiveInvoiceID:     active.ID,
		ActiveDueDate:       active.DueDate,
		NativeCount:         len(native),
		CarriedForwardCount: len(carried.Transactions),
		ReconciledCount:     len(reconciled),
	}

	logger.Info("account reconciled",
		slog.Int("invoices", len(invoices)),
		slog.Int("native", summary.NativeCount),
		slog.Int("carried_forward", summary.CarriedForwardCount),
		slog.Int("reconciled", summary.ReconciledCount),
	)

	return accountResult{
		summary:      summary,
		transactions: reconciled,
		warnings:     carried.Warnings,
	}, nil
}

func (s *ReconciliationService) isExcluded(description string) bool {
	if len(s.exclusions) == 0 {
		return false
	}
	normalized := models.NormalizeDescription(description)
	for _, pattern := range s.exclusions {
		if strings.Contains(normalized, pattern) {
			return true
		}
	}
	return false
}

// sortCategorized orders the report rows by category, date, description, account and id
func sortCategorized(transactions []models.CategorizedTransaction) {
	sort.SliceStable(transactions, func(i, j int) bool {
		a, b := transactions[i], transactions[j]
		if a.Category != b.Category {
			return a.Category < b.Category
		}
		if !a.OccurredDate.Equal(b.OccurredDate) {
			return a.OccurredDate.Before(b.OccurredDate)
		}
		if a.Description != b.Description {
			return a.Description < b.Description
		}
		if a.AccountID != b.AccountID {
			return a.AccountID < b.AccountID
		}
		return a.ID < b.ID
	})
}
