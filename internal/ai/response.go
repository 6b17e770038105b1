package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unsub-dev/unsub/internal/model"
)

// unknownName labels items the model returned without a usable name.
const unknownName = "Unknown Subscription"

// responseItem is one subscription as the model reports it.
type responseItem struct {
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Frequency string  `json:"frequency"`
	Category  string  `json:"category"`
	CancelURL string  `json:"cancel_url"`
}

type response struct {
	Subscriptions []responseItem `json:"subscriptions"`
}

// decodeResponse parses model output into subscriptions, applying safe
// defaults for missing or malformed fields: placeholder name, zero
// amount, monthly frequency, investigate category.
func decodeResponse(raw string) ([]model.Subscription, error) {
	var resp response
	if err := json.Unmarshal([]byte(stripFences(raw)), &resp); err != nil {
		return nil, fmt.Errorf("decoding model response: %w", err)
	}

	subs := make([]model.Subscription, 0, len(resp.Subscriptions))
	for _, item := range resp.Subscriptions {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			name = unknownName
		}
		subs = append(subs, model.Subscription{
			ID:          uuid.NewString(),
			Name:        name,
			Description: name,
			Amount:      decimal.NewFromFloat(item.Amount).Abs().Round(2),
			Frequency:   model.ParseFrequency(item.Frequency),
			Category:    model.ParseCategory(item.Category),
			CancelURL:   item.CancelURL,
		})
	}
	return subs, nil
}

// stripFences removes Markdown code fences and surrounding junk that
// models emit despite instructions, keeping the outermost JSON object.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		}
		if idx := strings.LastIndex(s, "```"); idx != -1 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return strings.TrimSpace(s)
}
