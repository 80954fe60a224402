package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"sentilex/internal/domain"
)

var reviewJSON bool

var reviewCmd = &cobra.Command{
	Use:   "review <number>",
	Short: "Score a single review",
	Long: `Score the review at the given 1-based position in the corpus and list the
positive and negative words it contains.

Examples:
  sentilex review 1
  sentilex review 250 --json`,
	Args: cobra.ExactArgs(1),
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
	reviewCmd.Flags().BoolVar(&reviewJSON, "json", false, "output as JSON")
}

func runReview(cmd *cobra.Command, args []string) error {
	ordinal, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: invalid review number %q", domain.ErrInvalidSelection, args[0])
	}

	s, err := openSession(GetConfig(), GetRootDir())
	if err != nil {
		return err
	}

	report, err := s.reports.AnalyzeReview(ordinal)
	if err != nil {
		return err
	}
	return newSink(cmd.OutOrStdout(), reviewJSON, nil).Review(report)
}
