package model

import (
	"github.com/shopspring/decimal"
)

// Transaction represents one parsed statement row. Date is kept in the
// source's own format; parsing into a calendar instant happens only where
// cadence inference needs it.
type Transaction struct {
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"` // always a non-negative magnitude
	Category    string          `json:"category,omitempty"`
}
