package ai

import (
	"context"

	"github.com/unsub-dev/unsub/internal/model"
)

// Classifier identifies subscriptions from raw transactions via an
// external service. The local detector always stands by as a fallback:
// a Classifier error is a signal to degrade, never a user-facing failure.
type Classifier interface {
	Classify(ctx context.Context, txns []model.Transaction) ([]model.Subscription, error)
}
