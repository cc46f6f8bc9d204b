package services

import (
	"testing"
	"time"

	"budget-reconciler/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func categorized(tx models.Transaction, category string) models.CategorizedTransaction {
	return models.CategorizedTransaction{Transaction: tx, Category: category}
}

func TestRecurringFeeFilter_KeepsMostRecentPerAccount(t *testing.T) {
	filter := NewRecurringFeeFilter([]string{models.CategoryAnnualFee})

	older := installment(1, 5, "ANUIDADE DIFERENCIADA", models.Date(2024, time.May, 3), "-39.00", 1, 1)
	newer := installment(2, 6, "Anuidade Diferenciada", models.Date(2024, time.June, 3), "-39.00", 1, 1)
	otherAccount := installment(3, 9, "ANUIDADE DIFERENCIADA", models.Date(2024, time.May, 3), "-39.00", 1, 1)
	otherAccount.AccountID = 2
	purchase := installment(4, 6, "Uber", models.Date(2024, time.May, 3), "-20.00", 1, 1)

	result := filter.Apply([]models.CategorizedTransaction{
		categorized(older, models.CategoryAnnualFee),
		categorized(purchase, models.CategoryTransport),
		categorized(newer, models.CategoryAnnualFee),
		categorized(otherAccount, models.CategoryAnnualFee),
	})

	require.Len(t, result, 3)
	assert.Equal(t, int64(4), result[0].ID)
	assert.Equal(t, int64(2), result[1].ID)
	assert.Equal(t, int64(3), result[2].ID)
}

func TestRecurringFeeFilter_TiesKeepHighestID(t *testing.T) {
	filter := NewRecurringFeeFilter([]string{models.CategoryAnnualFee})
	date := models.Date(2024, time.May, 3)

	result := filter.Apply([]models.CategorizedTransaction{
		categorized(installment(8, 5, "anuidade", date, "-10", 1, 1), models.CategoryAnnualFee),
		categorized(installment(3, 5, "anuidade", date, "-10", 1, 1), models.CategoryAnnualFee),
	})

	require.Len(t, result, 1)
	assert.Equal(t, int64(8), result[0].ID)
}

func TestRecurringFeeFilter_DifferentDescriptionsAreKept(t *testing.T) {
	filter := NewRecurringFeeFilter([]string{models.CategoryAnnualFee})
	date := models.Date(2024, time.May, 3)

	result := filter.Apply([]models.CategorizedTransaction{
		categorized(installment(1, 5, "anuidade titular", date, "-10", 1, 1), models.CategoryAnnualFee),
		categorized(installment(2, 5, "anuidade adicional", date, "-10", 1, 1), models.CategoryAnnualFee),
	})

	assert.Len(t, result, 2)
}

func TestRecurringFeeFilter_NoFeeCategoriesIsIdentity(t *testing.T) {
	filter := NewRecurringFeeFilter(nil)
	date := models.Date(2024, time.May, 3)
	input := []models.CategorizedTransaction{
		categorized(installment(1, 5, "anuidade", date, "-10", 1, 1), models.CategoryAnnualFee),
		categorized(installment(2, 5, "anuidade", date, "-10", 1, 1), models.CategoryAnnualFee),
	}

	assert.Equal(t, input, filter.Apply(input))
}
