package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/unsub-dev/unsub/internal/decisionlog"
	"github.com/unsub-dev/unsub/internal/detect"
	"github.com/unsub-dev/unsub/internal/wizard"
)

func newReviewCommand() *cobra.Command {
	var configPath string
	var logDir string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "review <file>...",
		Short: "Review detected subscriptions one at a time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReview(cmd, args, configPath, logDir, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "unsub.yaml", "config file path")
	cmd.Flags().StringVar(&logDir, "log-dir", ".", "directory for the decision log")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func runReview(cmd *cobra.Command, files []string, configPath, logDir string, verbose bool) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	// Review always works from local detection; the wizard is the human
	// counterpart of the AI classifier, not a layer on top of it.
	cfg.AI.Enabled = false
	svc := newService(cmd, cfg, false, verbose)

	contents := make([]string, 0, len(files))
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("reading %s: %w", f, err)
		}
		contents = append(contents, string(data))
	}

	result := svc.AnalyzeFiles(cmd.Context(), contents)
	if len(result.Subscriptions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No subscriptions detected.")
		return nil
	}

	decisions, err := wizard.Run(cmd.InOrStdin(), cmd.OutOrStdout(), result.Subscriptions)
	if err != nil {
		return fmt.Errorf("running review: %w", err)
	}

	relabeled := wizard.Relabel(result.Subscriptions, decisions)
	final := detect.Aggregate(relabeled, result.AnalyzedTransactions)

	fmt.Fprintln(cmd.OutOrStdout())
	printResult(cmd.OutOrStdout(), final)

	var entries []decisionlog.Entry
	for _, s := range result.Subscriptions {
		if cat, ok := decisions[s.ID]; ok && cat != s.Category {
			entries = append(entries, decisionlog.Entry{
				Timestamp:      time.Now(),
				SubscriptionID: s.ID,
				Name:           s.Name,
				From:           s.Category,
				To:             cat,
			})
		}
	}
	if len(entries) > 0 {
		if err := decisionlog.Append(logDir, entries); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: failed to write decision log: %v\n", err)
		}
	}

	return nil
}
