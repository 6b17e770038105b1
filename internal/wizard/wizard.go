package wizard

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/unsub-dev/unsub/internal/model"
)

// Decisions maps subscription IDs to the category the user chose.
type Decisions map[string]model.Category

// Relabel returns a new subscription list with categories overridden by
// decisions. The input list is never mutated; amount, frequency, name and
// transactions pass through untouched. Unknown IDs are ignored.
func Relabel(subs []model.Subscription, decisions Decisions) []model.Subscription {
	out := make([]model.Subscription, len(subs))
	copy(out, subs)
	for i := range out {
		if cat, ok := decisions[out[i].ID]; ok {
			out[i].Category = cat
		}
	}
	return out
}

// Run walks through the subscriptions in order, prompting for a
// disposition on each, and collects the decisions. Skipped items keep
// their current category; quit stops early with whatever was decided.
func Run(in io.Reader, out io.Writer, subs []model.Subscription) (Decisions, error) {
	decisions := make(Decisions)
	scanner := bufio.NewScanner(in)

	for i, sub := range subs {
		fmt.Fprintf(out, "[%d/%d] %s  %s/%s\n", i+1, len(subs), sub.Name, sub.Amount.StringFixed(2), sub.Frequency)
		if sub.Description != sub.Name {
			fmt.Fprintf(out, "      %s\n", sub.Description)
		}
		fmt.Fprint(out, "  [k]eep / [c]ancel / [i]nvestigate / [s]kip / [q]uit: ")

		if !scanner.Scan() {
			break
		}
		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "k", "keep":
			decisions[sub.ID] = model.CategoryKeep
		case "c", "cancel":
			decisions[sub.ID] = model.CategoryCancel
		case "i", "investigate":
			decisions[sub.ID] = model.CategoryInvestigate
		case "q", "quit":
			return decisions, scanner.Err()
		}
	}
	return decisions, scanner.Err()
}
