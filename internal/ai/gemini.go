package ai

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/unsub-dev/unsub/internal/model"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// DefaultMaxTransactions caps how many transactions go into one prompt,
// to stay inside the model's context window.
const DefaultMaxTransactions = 200

// GeminiClassifier sends transaction batches to a Gemini model and maps
// the JSON response into subscriptions. Exactly one call is made per
// analysis; there are no retries.
type GeminiClassifier struct {
	modelName string
	maxTxns   int
}

// NewGeminiClassifier creates a classifier for the given model name and
// batch cap, falling back to DefaultModel and DefaultMaxTransactions
// when unset. Credentials come from the environment, the same way the
// genai SDK resolves them everywhere else.
func NewGeminiClassifier(modelName string, maxTransactions int) *GeminiClassifier {
	if modelName == "" {
		modelName = DefaultModel
	}
	if maxTransactions <= 0 {
		maxTransactions = DefaultMaxTransactions
	}
	return &GeminiClassifier{modelName: modelName, maxTxns: maxTransactions}
}

// Classify sends the transactions to the model and returns its
// subscription list. Items come back with no source transactions
// attached; the model works from the flattened batch text.
func (g *GeminiClassifier) Classify(ctx context.Context, txns []model.Transaction) ([]model.Subscription, error) {
	if len(txns) == 0 {
		return nil, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt(txns, g.maxTxns)},
			},
		},
	}

	resp, err := client.Models.GenerateContent(ctx, g.modelName, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("generating classification: %w", err)
	}

	raw := resp.Text()
	if raw == "" {
		return nil, fmt.Errorf("empty response from model")
	}

	return decodeResponse(raw)
}

// buildPrompt flattens at most maxTxns transactions into the
// classification prompt. The model must answer with strict JSON only.
func buildPrompt(txns []model.Transaction, maxTxns int) string {
	if len(txns) > maxTxns {
		txns = txns[:maxTxns]
	}

	var b strings.Builder
	b.WriteString("Analyze these bank transactions and identify RECURRING SUBSCRIPTIONS.\n")
	b.WriteString("Ignore one-off purchases (like coffee, groceries, gas, transfers).\n\n")
	b.WriteString("Look for:\n")
	b.WriteString("- SaaS: Netflix, Spotify, Adobe, Zoom, Dropbox, etc.\n")
	b.WriteString("- Utilities: Electric, Water, Internet, Phone\n")
	b.WriteString("- Memberships: Gym, Clubs\n")
	b.WriteString("- Recurring services: Insurance, Loans\n\n")
	b.WriteString("Return ONLY a JSON object with a \"subscriptions\" array.\n")
	b.WriteString("Each item must have:\n")
	b.WriteString("- \"name\": clean service name (e.g. \"Netflix\")\n")
	b.WriteString("- \"amount\": the monthly cost as a number\n")
	b.WriteString("- \"frequency\": \"monthly\", \"yearly\", \"weekly\" or \"unknown\"\n")
	b.WriteString("- \"category\": \"cancel\" (junk/unused), \"keep\" (essential) or \"investigate\" (unsure)\n")
	b.WriteString("- \"cancel_url\": the direct cancellation URL for the service, if known\n\n")
	b.WriteString("Do NOT wrap the response in code fences or Markdown.\n\n")
	b.WriteString("Transactions:\n")

	for _, txn := range txns {
		b.WriteString(txn.Date)
		b.WriteString(" | ")
		b.WriteString(txn.Description)
		b.WriteString(" | $")
		b.WriteString(txn.Amount.String())
		b.WriteByte('\n')
	}
	return b.String()
}
