package cli

import (
	"github.com/spf13/cobra"
)

var summaryJSON bool

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Run the matching pass and print corpus totals",
	Args:  cobra.NoArgs,
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().BoolVar(&summaryJSON, "json", false, "output as JSON")
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()

	s, err := openSession(cfg, GetRootDir())
	if err != nil {
		return err
	}

	progress := newProgress(cmd.ErrOrStderr(), cfg.UI.ProgressBar && !summaryJSON)
	matches, elapsed := runBatch(s, progress)
	return newSink(cmd.OutOrStdout(), summaryJSON, nil).Summary(s.reports.Summarize(matches, elapsed))
}
