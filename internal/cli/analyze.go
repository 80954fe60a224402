package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"
)

var analyzeYes bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Match every review against the lexicon and open the interactive menu",
	Long: `Load the word lists and reviews, run the corpus-wide matching pass, print a
summary and open a menu for word frequency listings and single-review reports.

Examples:
  sentilex analyze
  sentilex analyze --yes -d ./data`,
	Args: cobra.NoArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().BoolVarP(&analyzeYes, "yes", "y", false, "run the matching pass without asking")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg := GetConfig()
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())

	s, err := openSession(cfg, GetRootDir())
	if err != nil {
		return err
	}

	if cfg.Analysis.ConfirmBatch && !analyzeYes {
		ok, err := confirm(in, out, "Do you want to perform Binary Search?")
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintln(out, "Exiting without performing binary search.")
			return nil
		}
	}

	screen := newScreen(out, cfg.UI.ClearScreen)
	sink := newSink(out, false, screen)
	screen.Clear()

	matches, elapsed := runBatch(s, newProgress(cmd.ErrOrStderr(), cfg.UI.ProgressBar))
	summary := s.reports.Summarize(matches, elapsed)
	if err := sink.Summary(summary); err != nil {
		return err
	}
	fmt.Fprintln(out)

	return newMenu(in, out, screen, sink, s, matches, summary, cfg.UI.PauseListing).Run()
}
