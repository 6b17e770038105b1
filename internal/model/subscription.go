package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Frequency is the inferred billing cadence of a subscription.
type Frequency string

const (
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyYearly  Frequency = "yearly"
	FrequencyUnknown Frequency = "unknown"
)

// Category is the triage disposition of a subscription. This is distinct
// from the bank-provided transaction category field.
type Category string

const (
	CategoryCancel      Category = "cancel"
	CategoryKeep        Category = "keep"
	CategoryInvestigate Category = "investigate"
)

// ParseFrequency maps an arbitrary string to a Frequency, defaulting to
// monthly for anything unrecognized. Used when mapping external
// classification responses, where missing fields get safe defaults.
func ParseFrequency(s string) Frequency {
	switch Frequency(strings.ToLower(strings.TrimSpace(s))) {
	case FrequencyWeekly:
		return FrequencyWeekly
	case FrequencyYearly:
		return FrequencyYearly
	case FrequencyUnknown:
		return FrequencyUnknown
	default:
		return FrequencyMonthly
	}
}

// ParseCategory maps an arbitrary string to a Category, defaulting to
// investigate for anything unrecognized.
func ParseCategory(s string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryCancel:
		return CategoryCancel
	case CategoryKeep:
		return CategoryKeep
	default:
		return CategoryInvestigate
	}
}

// Subscription is one detected recurring charge. The engine never assigns
// cancel or keep itself; those come from the external classifier or the
// review wizard.
type Subscription struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Amount       decimal.Decimal `json:"amount"` // representative, 2-decimal rounded
	Frequency    Frequency       `json:"frequency"`
	Category     Category        `json:"category"`
	Transactions []Transaction   `json:"transactions"`
	CancelURL    string          `json:"cancelUrl,omitempty"`
}

// AnnualCost returns the subscription's annualized cost: yearly amounts
// as-is, everything else projected as twelve monthly payments.
func (s Subscription) AnnualCost() decimal.Decimal {
	if s.Frequency == FrequencyYearly {
		return s.Amount
	}
	return s.Amount.Mul(decimal.NewFromInt(12))
}

// AnalysisResult is the full output of one analysis. It is recomputed
// fresh every run; there is no partial-update path.
type AnalysisResult struct {
	Subscriptions        []Subscription  `json:"subscriptions"` // sorted by amount descending
	TotalMonthly         decimal.Decimal `json:"totalMonthly"`
	TotalYearly          decimal.Decimal `json:"totalYearly"`
	PotentialSavings     decimal.Decimal `json:"potentialSavings"`
	AnalyzedTransactions int             `json:"analyzedTransactions"`
}
