package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBudgetLimits(t *testing.T) {
	limits := DefaultBudgetLimits()

	assert.True(t, limits.BaseFor(CategoryTravel).Equal(decimal.NewFromInt(700)))
	assert.True(t, limits.BaseFor(CategoryEducation).Equal(decimal.NewFromInt(4250)))
	assert.True(t, limits.BaseFor("unbudgeted").IsZero())

	assert.True(t, limits.IsFixed(CategoryCarInsurance))
	assert.False(t, limits.IsFixed(CategoryTravel))

	for _, category := range AllCategories() {
		_, ok := limits.Base[category]
		assert.True(t, ok, "category %s should have a default limit", category)
	}
}

func TestBudgetLimits_CategoriesSorted(t *testing.T) {
	limits := BudgetLimits{Base: map[string]decimal.Decimal{
		"viagem": decimal.NewFromInt(1),
		"casa":   decimal.NewFromInt(1),
		"outros": decimal.NewFromInt(1),
	}}

	assert.Equal(t, []string{"casa", "outros", "viagem"}, limits.Categories())
}

func TestDefaultRuleSet(t *testing.T) {
	rules := DefaultRuleSet()

	require.NotEmpty(t, rules.Rules)
	assert.Equal(t, CategoryOther, rules.Default)
	assert.Equal(t, CategoryTravel, rules.Rules[0].Category, "travel rules are evaluated first")

	seen := map[string]bool{}
	for _, rule := range rules.Rules {
		assert.False(t, seen[rule.Category], "duplicate rule for %s", rule.Category)
		seen[rule.Category] = true
		assert.NotEmpty(t, rule.Keywords)
	}
}

func TestNewExportRows(t *testing.T) {
	runID := uuid.New()
	report := &BudgetReport{
		RunID: runID,
		Transactions: []CategorizedTransaction{
			{
				Transaction: Transaction{
					AccountID:        1,
					Description:      "uber trip",
					OccurredDate:     Date(2024, time.March, 2),
					Amount:           decimal.NewFromFloat(-25.50),
					InstallmentIndex: 1,
					InstallmentCount: 1,
					Provenance:       ProvenanceNative,
				},
				Category: CategoryTransport,
			},
		},
		Aggregates: []CategoryAggregate{
			{
				Category:      CategoryTransport,
				Spent:         decimal.NewFromFloat(25.50),
				BaseLimit:     decimal.NewFromInt(1400),
				AdjustedLimit: decimal.NewFromInt(1400),
				PercentUsed:   decimal.NewFromFloat(1.82),
			},
		},
	}

	rows := NewExportRows(report)

	require.Len(t, rows, 2)
	assert.Equal(t, ExportRowTypeTransaction, rows[0].RowType)
	assert.Equal(t, runID, rows[0].RunID)
	assert.Equal(t, "native", rows[0].Provenance)
	require.NotNil(t, rows[0].OccurredDate)
	assert.Equal(t, ExportRowTypeCategory, rows[1].RowType)
	assert.Nil(t, rows[1].OccurredDate)
	assert.True(t, rows[1].BaseLimit.Equal(decimal.NewFromInt(1400)))
}

func TestCircuitBreakerState_String(t *testing.T) {
	assert.Equal(t, "closed", CircuitBreakerState(0).String())
	assert.Equal(t, "open", CircuitBreakerState(1).String())
	assert.Equal(t, "half_open", CircuitBreakerState(2).String())
	assert.Equal(t, "unknown", CircuitBreakerState(9).String())
}
