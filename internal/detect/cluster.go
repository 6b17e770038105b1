package detect

import (
	"strings"
	"unicode"

	"github.com/unsub-dev/unsub/internal/model"
)

// keyLength is the grouping-key prefix length. Bank descriptions carry
// trailing noise (store numbers, transaction IDs, city codes) that varies
// charge to charge; a short prefix clusters those together at the cost of
// the occasional false merge between merchants sharing a prefix.
const keyLength = 20

// Cluster is the set of transactions sharing one normalized description
// key, treated as a single candidate recurring charge.
type Cluster struct {
	Key          string
	Transactions []model.Transaction
}

// NormalizeMerchant collapses a description into its grouping key:
// lowercase, alphanumeric and spaces only, runs of whitespace collapsed,
// trimmed, first 20 bytes. Deterministic and pure.
func NormalizeMerchant(description string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(description) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	s := strings.Join(strings.Fields(b.String()), " ")
	if len(s) > keyLength {
		s = s[:keyLength]
	}
	return s
}

// Group clusters transactions by normalized description. Clusters appear
// in first-encounter order and members keep their source order; date
// sorting happens later, during cadence inference.
func Group(txns []model.Transaction) []Cluster {
	index := make(map[string]int)
	var clusters []Cluster

	for _, txn := range txns {
		key := NormalizeMerchant(txn.Description)
		i, ok := index[key]
		if !ok {
			i = len(clusters)
			index[key] = i
			clusters = append(clusters, Cluster{Key: key})
		}
		clusters[i].Transactions = append(clusters[i].Transactions, txn)
	}
	return clusters
}
