package cli

import (
	"github.com/spf13/cobra"
	"sentilex/internal/domain"
)

var (
	wordsPolarity string
	wordsJSON     bool
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List lexicon words found in the reviews with their counts",
	Long: `Run the matching pass and list every word of one lexicon side that occurs in
the corpus, in lexicon order, as word(count).

Examples:
  sentilex words
  sentilex words -p negative --json`,
	Args: cobra.NoArgs,
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().StringVarP(&wordsPolarity, "polarity", "p", "positive", "lexicon side: positive or negative")
	wordsCmd.Flags().BoolVar(&wordsJSON, "json", false, "output as JSON")
}

func runWords(cmd *cobra.Command, args []string) error {
	polarity, err := domain.ParsePolarity(wordsPolarity)
	if err != nil {
		return err
	}

	cfg := GetConfig()
	s, err := openSession(cfg, GetRootDir())
	if err != nil {
		return err
	}

	matches, _ := runBatch(s, newProgress(cmd.ErrOrStderr(), cfg.UI.ProgressBar && !wordsJSON))
	return newSink(cmd.OutOrStdout(), wordsJSON, nil).Words(s.batch.Listing(matches, polarity))
}
