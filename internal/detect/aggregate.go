package detect

import (
	"github.com/shopspring/decimal"

	"github.com/unsub-dev/unsub/internal/model"
)

var monthsPerYear = decimal.NewFromInt(12)

// Aggregate computes summary totals over a classified subscription list.
// analyzed is the count of transactions that went into the analysis, not
// the count that survived clustering.
//
// TotalYearly folds projected monthly costs into the yearly bucket, and
// both totals skip weekly and unknown cadences entirely. The behavior is
// pinned by TestAggregate_WeeklyExcludedFromTotals.
func Aggregate(subs []model.Subscription, analyzed int) model.AnalysisResult {
	totalMonthly := decimal.Zero
	totalYearly := decimal.Zero
	savings := decimal.Zero

	for _, s := range subs {
		switch s.Frequency {
		case model.FrequencyMonthly:
			totalMonthly = totalMonthly.Add(s.Amount)
		case model.FrequencyYearly:
			totalYearly = totalYearly.Add(s.Amount)
		}
		if s.Category == model.CategoryCancel {
			savings = savings.Add(s.AnnualCost())
		}
	}
	totalYearly = totalYearly.Add(totalMonthly.Mul(monthsPerYear))

	return model.AnalysisResult{
		Subscriptions:        subs,
		TotalMonthly:         totalMonthly,
		TotalYearly:          totalYearly,
		PotentialSavings:     savings,
		AnalyzedTransactions: analyzed,
	}
}
