package detect

import (
	"sort"
	"strings"
	"time"

	"github.com/unsub-dev/unsub/internal/model"
)

// dateLayouts are tried in order when parsing statement dates. Real
// exports use ISO or US slash formats almost exclusively.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"Jan 2, 2006",
}

// Mean-gap boundaries, in days.
const (
	weeklyMaxGapDays  = 10
	monthlyMaxGapDays = 45
	yearlyMinGapDays  = 300
)

// parseDate returns the instant for the first layout that accepts s.
func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// InferFrequency estimates a billing cadence from the spacing of the
// transactions' dates. A single transaction defaults to monthly, the
// conventional subscription cadence; fewer than two parsable dates is
// unknown. Gaps between 45 and 300 days also fall back to monthly rather
// than unknown.
func InferFrequency(txns []model.Transaction) model.Frequency {
	if len(txns) < 2 {
		return model.FrequencyMonthly
	}

	dates := make([]time.Time, 0, len(txns))
	for _, txn := range txns {
		if t, ok := parseDate(txn.Date); ok {
			dates = append(dates, t)
		}
	}
	if len(dates) < 2 {
		return model.FrequencyUnknown
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	var totalDays float64
	for i := 1; i < len(dates); i++ {
		totalDays += dates[i].Sub(dates[i-1]).Hours() / 24
	}
	meanGap := totalDays / float64(len(dates)-1)

	switch {
	case meanGap <= weeklyMaxGapDays:
		return model.FrequencyWeekly
	case meanGap <= monthlyMaxGapDays:
		return model.FrequencyMonthly
	case meanGap >= yearlyMinGapDays:
		return model.FrequencyYearly
	default:
		return model.FrequencyMonthly
	}
}
