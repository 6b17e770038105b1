package detect

import (
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unsub-dev/unsub/internal/model"
)

// Detector turns raw transactions into classified subscriptions.
type Detector struct {
	lexicon   Lexicon
	minAmount decimal.Decimal
	newID     func() string
}

// NewDetector creates a Detector with the given keyword lexicon and cost
// floor. Clusters whose representative amount falls below the floor are
// treated as fees or noise, not subscriptions.
func NewDetector(lexicon Lexicon, minAmount decimal.Decimal) *Detector {
	return &Detector{
		lexicon:   lexicon,
		minAmount: minAmount,
		newID:     uuid.NewString,
	}
}

// Detect runs the full local inference pass: group by merchant, classify
// each cluster, sort by amount descending and aggregate. It always runs
// to completion and never fails on data quality.
func (d *Detector) Detect(txns []model.Transaction) model.AnalysisResult {
	clusters := Group(txns)

	var subs []model.Subscription
	for _, c := range clusters {
		if sub, ok := d.classify(c); ok {
			subs = append(subs, sub)
		}
	}

	// Stable: ties keep first-encounter order.
	sort.SliceStable(subs, func(i, j int) bool {
		return subs[i].Amount.GreaterThan(subs[j].Amount)
	})

	return Aggregate(subs, len(txns))
}

// classify promotes a cluster to a subscription, or rejects it as a
// one-off purchase. A cluster qualifies with two or more charges, or with
// a single charge from a known service.
func (d *Detector) classify(c Cluster) (model.Subscription, bool) {
	if len(c.Transactions) == 0 {
		return model.Subscription{}, false
	}
	first := c.Transactions[0]

	if len(c.Transactions) < 2 && !d.lexicon.Contains(first.Description) {
		return model.Subscription{}, false
	}

	sum := decimal.Zero
	for _, txn := range c.Transactions {
		sum = sum.Add(txn.Amount)
	}
	amount := sum.Div(decimal.NewFromInt(int64(len(c.Transactions)))).Round(2)

	if amount.LessThan(d.minAmount) {
		return model.Subscription{}, false
	}

	return model.Subscription{
		ID:          d.newID(),
		Name:        d.lexicon.ServiceName(first.Description),
		Description: first.Description,
		Amount:      amount,
		Frequency:   InferFrequency(c.Transactions),
		// The local engine never decides cancel or keep; that is left
		// to the external classifier or the review wizard.
		Category:     model.CategoryInvestigate,
		Transactions: c.Transactions,
	}, true
}
