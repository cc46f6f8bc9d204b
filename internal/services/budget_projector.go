package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	apierrors "budget-reconciler/internal/errors"
	"budget-reconciler/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCycleStartDay = errors.New("cycle start day must be at least 1")

	hundred = decimal.NewFromInt(100)
)

type BudgetProjector struct{}

func NewBudgetProjector() BudgetProjectorInterface {
	return &BudgetProjector{}
}

// cycle is the position of today inside the budget cycle
type cycle struct {
	days      int
	elapsed   int
	remaining int
}

func newCycle(cycleStartDay int, today time.Time) cycle {
	days := models.DaysInMonth(today) - cycleStartDay + 1
	elapsed := today.Day() - cycleStartDay + 1
	if elapsed < 0 {
		elapsed = 0
	}
	if days > 0 && elapsed > days {
		elapsed = days
	}
	remaining := days - elapsed
	if remaining < 0 {
		remaining = 0
	}
	return cycle{days: days, elapsed: elapsed, remaining: remaining}
}

// perDay spreads amount over the cycle. A cycle without days yields
// ErrDivisionUndefined, which callers degrade to zero.
func (c cycle) perDay(amount decimal.Decimal) (decimal.Decimal, error) {
	return divide(amount, decimal.NewFromInt(int64(c.days)))
}

func (c cycle) elapsedFraction() decimal.Decimal {
	fraction, err := divide(decimal.NewFromInt(int64(c.elapsed)), decimal.NewFromInt(int64(c.days)))
	if err != nil {
		return decimal.Zero
	}
	return fraction.Round(4)
}

func divide(numerator, denominator decimal.Decimal) (decimal.Decimal, error) {
	if denominator.Sign() <= 0 {
		return decimal.Zero, apierrors.ErrDivisionUndefined
	}
	return numerator.Div(denominator), nil
}

// orZero degrades an undefined division to zero
func orZero(value decimal.Decimal, err error) decimal.Decimal {
	if err != nil {
		return decimal.Zero
	}
	return value
}

type categoryTotal struct {
	sum   decimal.Decimal
	count int
}

// Project groups transactions by category and computes the adjusted limit,
// usage and expected spend of every category, budgeted or not.
func (p *BudgetProjector) Project(transactions []models.CategorizedTransaction, limits models.BudgetLimits, cycleStartDay int, today time.Time) ([]models.CategoryAggregate, error) {
	if cycleStartDay < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCycleStartDay, cycleStartDay)
	}

	totals := make(map[string]*categoryTotal)
	for _, category := range limits.Categories() {
		totals[category] = &categoryTotal{sum: decimal.Zero}
	}
	for _, tx := range transactions {
		total, ok := totals[tx.Category]
		if !ok {
			total = &categoryTotal{sum: decimal.Zero}
			totals[tx.Category] = total
		}
		total.sum = total.sum.Add(tx.Amount)
		total.count++
	}

	names := make([]string, 0, len(totals))
	for name := range totals {
		names = append(names, name)
	}
	sort.Strings(names)

	c := newCycle(cycleStartDay, today)
	aggregates := make([]models.CategoryAggregate, len(names))
	var under []int
	baseSum := decimal.Zero
	committed := decimal.Zero

	for i, name := range names {
		spent := totals[name].sum.Abs()
		base := limits.BaseFor(name)
		baseSum = baseSum.Add(base)

		aggregate := models.CategoryAggregate{
			Category:         name,
			TransactionCount: totals[name].count,
			Spent:            spent,
			BaseLimit:        base,
		}

		switch {
		case limits.IsFixed(name):
			aggregate.Class = models.AggregateClassFixed
			projected := spent.Add(orZero(c.perDay(base)).Mul(decimal.NewFromInt(int64(c.remaining))))
			aggregate.AdjustedLimit = decimal.Max(base, projected).Round(2)
			committed = committed.Add(aggregate.AdjustedLimit)
		case spent.GreaterThan(base):
			aggregate.Class = models.AggregateClassOverBudget
			aggregate.AdjustedLimit = spent
			committed = committed.Add(spent)
		default:
			aggregate.Class = models.AggregateClassUnderBudget
			aggregate.AdjustedLimit = spent
			committed = committed.Add(spent)
			under = append(under, i)
		}

		aggregates[i] = aggregate
	}

	distributeSlack(aggregates, under, baseSum.Sub(committed))

	for i := range aggregates {
		aggregate := &aggregates[i]
		aggregate.PercentUsed = percentOf(aggregate.Spent, aggregate.AdjustedLimit)
		aggregate.ExpectedSpendToDate = orZero(c.perDay(aggregate.AdjustedLimit)).
			Mul(decimal.NewFromInt(int64(c.elapsed))).
			Round(2)
	}

	return aggregates, nil
}

// distributeSlack splits a positive slack evenly over the under-budget
// categories. Shares are rounded down to cents and the last category absorbs
// the remainder, so the adjusted limits add up to the total base exactly and
// no allowance goes negative.
func distributeSlack(aggregates []models.CategoryAggregate, under []int, slack decimal.Decimal) {
	if !slack.IsPositive() || len(under) == 0 {
		return
	}

	share := slack.Div(decimal.NewFromInt(int64(len(under)))).RoundDown(2)
	remainder := slack
	for n, i := range under {
		portion := share
		if n == len(under)-1 {
			portion = remainder
		}
		aggregates[i].AdjustedLimit = aggregates[i].Spent.Add(portion)
		remainder = remainder.Sub(portion)
	}
}

func percentOf(spent, limit decimal.Decimal) decimal.Decimal {
	ratio, err := divide(spent, limit)
	if err != nil {
		return decimal.Zero
	}
	return ratio.Mul(hundred).Round(2)
}

// Totals sums the aggregates and counts installment statistics over the
// transactions that fed them.
func (p *BudgetProjector) Totals(aggregates []models.CategoryAggregate, transactions []models.CategorizedTransaction, cycleStartDay int, today time.Time) models.ReportTotals {
	totals := models.ReportTotals{
		Spent:            decimal.Zero,
		BaseLimit:        decimal.Zero,
		AdjustedLimit:    decimal.Zero,
		TransactionCount: len(transactions),
	}

	for _, aggregate := range aggregates {
		totals.Spent = totals.Spent.Add(aggregate.Spent)
		totals.BaseLimit = totals.BaseLimit.Add(aggregate.BaseLimit)
		totals.AdjustedLimit = totals.AdjustedLimit.Add(aggregate.AdjustedLimit)
	}
	totals.PercentUsed = percentOf(totals.Spent, totals.AdjustedLimit)

	if cycleStartDay >= 1 {
		totals.ElapsedFraction = newCycle(cycleStartDay, today).elapsedFraction()
	} else {
		totals.ElapsedFraction = decimal.Zero
	}

	for _, tx := range transactions {
		if tx.IsInInstallments() {
			totals.InstallmentCount++
		}
		if tx.IsLastInstallment() {
			totals.LastInstallmentCount++
		}
	}

	return totals
}
