package analyzer

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/unsub-dev/unsub/internal/ai"
	"github.com/unsub-dev/unsub/internal/detect"
	"github.com/unsub-dev/unsub/internal/model"
	"github.com/unsub-dev/unsub/internal/statement"
)

// Service runs a full analysis: statement parsing, one optional external
// classification attempt, and the local detection fallback. Each call
// operates over its own transaction list and produces an independently
// owned result, so concurrent analyses are safe.
type Service struct {
	detector   *detect.Detector
	classifier ai.Classifier
	log        zerolog.Logger
}

// NewService creates an analysis service. classifier may be nil, in which
// case only the local engine runs.
func NewService(detector *detect.Detector, classifier ai.Classifier, log zerolog.Logger) *Service {
	return &Service{
		detector:   detector,
		classifier: classifier,
		log:        log,
	}
}

// Analyze parses one statement export and analyzes its transactions.
func (s *Service) Analyze(ctx context.Context, content string) model.AnalysisResult {
	parsed := statement.Parse(content)
	return s.AnalyzeTransactions(ctx, parsed.Transactions)
}

// AnalyzeFiles runs one analysis over the union of several statement
// exports.
func (s *Service) AnalyzeFiles(ctx context.Context, contents []string) model.AnalysisResult {
	var txns []model.Transaction
	for _, content := range contents {
		txns = append(txns, statement.Parse(content).Transactions...)
	}
	return s.AnalyzeTransactions(ctx, txns)
}

// AnalyzeTransactions classifies already-built transactions. The external
// classifier gets exactly one attempt; an error or an empty answer falls
// back to local detection and is never surfaced as a failure.
func (s *Service) AnalyzeTransactions(ctx context.Context, txns []model.Transaction) model.AnalysisResult {
	if s.classifier != nil {
		subs, err := s.classifier.Classify(ctx, txns)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Msg("external classification failed, falling back to local detection")
		case len(subs) == 0:
			s.log.Debug().Msg("external classification returned nothing, falling back to local detection")
		default:
			s.log.Debug().Int("subscriptions", len(subs)).Msg("using external classification")
			sort.SliceStable(subs, func(i, j int) bool {
				return subs[i].Amount.GreaterThan(subs[j].Amount)
			})
			return detect.Aggregate(subs, len(txns))
		}
	}

	result := s.detector.Detect(txns)
	s.log.Debug().
		Int("transactions", result.AnalyzedTransactions).
		Int("subscriptions", len(result.Subscriptions)).
		Msg("local detection complete")
	return result
}
