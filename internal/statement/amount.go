package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// currencySymbols strips the currency marks that show up in statement
// amount columns.
var currencySymbols = strings.NewReplacer("$", "", "€", "", "£", "", "¥", "")

// NormalizeAmount converts a locale-formatted amount string into an
// unsigned magnitude. Parenthesized values (the bank convention for
// debits) parse as negatives before the absolute value is taken; the
// sign is irrelevant for subscription-cost purposes.
func NormalizeAmount(raw string) (decimal.Decimal, bool) {
	s := currencySymbols.Replace(raw)
	s = strings.ReplaceAll(s, "(", "-")
	s = strings.ReplaceAll(s, ")", "-")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)
	s = leadingNumber(s)
	if s == "" {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d.Abs(), true
}

// ParseAmount is NormalizeAmount with the defensive zero default: amounts
// that fail to parse become 0 rather than an error.
func ParseAmount(raw string) decimal.Decimal {
	d, ok := NormalizeAmount(raw)
	if !ok {
		return decimal.Zero
	}
	return d
}

// leadingNumber returns the longest numeric prefix of s (optional sign,
// digits, at most one decimal point), so that trailing junk like the
// minus left over from a closing parenthesis does not break parsing.
func leadingNumber(s string) string {
	i := 0
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		i++
	}
	start := i
	seenDot := false
	for i < len(s) {
		c := s[i]
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			i++
			continue
		}
		break
	}
	if i == start {
		return ""
	}
	return s[:i]
}
