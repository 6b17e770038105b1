package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unsub-dev/unsub/internal/model"
)

func sub(name, amount string, freq model.Frequency, cat model.Category) model.Subscription {
	return model.Subscription{
		ID:        name,
		Name:      name,
		Amount:    amt(amount),
		Frequency: freq,
		Category:  cat,
	}
}

func TestAggregate_Totals(t *testing.T) {
	subs := []model.Subscription{
		sub("Netflix", "15.99", model.FrequencyMonthly, model.CategoryInvestigate),
		sub("Spotify", "9.99", model.FrequencyMonthly, model.CategoryKeep),
		sub("Domain", "12.00", model.FrequencyYearly, model.CategoryInvestigate),
	}

	result := Aggregate(subs, 10)

	assert.Equal(t, "25.98", result.TotalMonthly.StringFixed(2))
	// Native yearly plus projected monthly: 12.00 + 25.98*12.
	assert.Equal(t, "323.76", result.TotalYearly.StringFixed(2))
	assert.Equal(t, 10, result.AnalyzedTransactions)
}

func TestAggregate_PotentialSavings(t *testing.T) {
	subs := []model.Subscription{
		sub("Netflix", "15.99", model.FrequencyMonthly, model.CategoryCancel),
		sub("Domain", "12.00", model.FrequencyYearly, model.CategoryCancel),
		sub("Spotify", "9.99", model.FrequencyMonthly, model.CategoryKeep),
	}

	result := Aggregate(subs, 3)

	// Annualized: 15.99*12 + 12.00. The kept Spotify contributes nothing.
	assert.Equal(t, "203.88", result.PotentialSavings.StringFixed(2))
	// TotalMonthly counts all monthly subscriptions regardless of category.
	assert.Equal(t, "25.98", result.TotalMonthly.StringFixed(2))
}

// Weekly and unknown cadences contribute to neither total. That is the
// established aggregation behavior, preserved deliberately; a weekly gym
// membership is invisible in both totals.
func TestAggregate_WeeklyExcludedFromTotals(t *testing.T) {
	subs := []model.Subscription{
		sub("Gym", "25.00", model.FrequencyWeekly, model.CategoryInvestigate),
		sub("Mystery", "5.00", model.FrequencyUnknown, model.CategoryInvestigate),
	}

	result := Aggregate(subs, 8)

	assert.True(t, result.TotalMonthly.IsZero())
	assert.True(t, result.TotalYearly.IsZero())
}

func TestAggregate_WeeklyCancelStillCountsAsSavings(t *testing.T) {
	subs := []model.Subscription{
		sub("Gym", "25.00", model.FrequencyWeekly, model.CategoryCancel),
	}

	result := Aggregate(subs, 4)

	// Savings annualize non-yearly amounts as twelve payments.
	assert.Equal(t, "300.00", result.PotentialSavings.StringFixed(2))
}

func TestAggregate_Empty(t *testing.T) {
	result := Aggregate(nil, 0)
	assert.Empty(t, result.Subscriptions)
	assert.True(t, result.TotalMonthly.IsZero())
	assert.True(t, result.TotalYearly.IsZero())
	assert.True(t, result.PotentialSavings.IsZero())
}
