package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/unsub-dev/unsub/internal/ai"
	"github.com/unsub-dev/unsub/internal/analyzer"
	"github.com/unsub-dev/unsub/internal/config"
	"github.com/unsub-dev/unsub/internal/detect"
	"github.com/unsub-dev/unsub/internal/logger"
	"github.com/unsub-dev/unsub/internal/model"
)

func newAnalyzeCommand() *cobra.Command {
	var configPath string
	var useAI bool
	var asJSON bool
	var verbose bool

	cmd := &cobra.Command{
		Use:   "analyze <file>...",
		Short: "Detect subscriptions in statement CSV exports",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, configPath, useAI, asJSON, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "unsub.yaml", "config file path")
	cmd.Flags().BoolVar(&useAI, "ai", false, "classify via the external AI service, falling back to local detection")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runAnalyze(cmd *cobra.Command, files []string, configPath string, useAI, asJSON, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	svc := newService(cmd, cfg, useAI, verbose)

	contents := make([]string, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f, err)
		}
		contents = append(contents, string(data))
	}

	result := svc.AnalyzeFiles(cmd.Context(), contents)

	if asJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(cmd.OutOrStdout(), result)
	return nil
}

// loadConfig reads the config file, falling back to defaults when it does
// not exist.
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newService wires the detector, optional classifier and logger from
// config and flags.
func newService(cmd *cobra.Command, cfg *config.Config, useAI, verbose bool) *analyzer.Service {
	log := logger.New(cmd.ErrOrStderr(), verbose)

	lexicon := detect.DefaultLexicon()
	lexicon = append(lexicon, cfg.Lexicon.ExtraKeywords...)
	detector := detect.NewDetector(lexicon, decimal.NewFromFloat(cfg.Thresholds.MinAmount))

	var classifier ai.Classifier
	if useAI || cfg.AI.Enabled {
		classifier = ai.NewGeminiClassifier(cfg.AI.Model, cfg.AI.MaxTransactions)
	}

	return analyzer.NewService(detector, classifier, log)
}

// printResult renders the text report.
func printResult(w io.Writer, result model.AnalysisResult) {
	fmt.Fprintf(w, "Analyzed %d transactions, found %d subscriptions\n\n",
		result.AnalyzedTransactions, len(result.Subscriptions))

	if len(result.Subscriptions) > 0 {
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tAMOUNT\tFREQUENCY\tCATEGORY")
		for _, s := range result.Subscriptions {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", s.Name, s.Amount.StringFixed(2), s.Frequency, s.Category)
		}
		tw.Flush()
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Monthly total:     %s\n", result.TotalMonthly.StringFixed(2))
	fmt.Fprintf(w, "Annualized total:  %s\n", result.TotalYearly.StringFixed(2))
	fmt.Fprintf(w, "Potential savings: %s\n", result.PotentialSavings.StringFixed(2))
}
