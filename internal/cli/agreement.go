package cli

import (
	"github.com/spf13/cobra"
	"sentilex/internal/usecase"
)

var agreementJSON bool

var agreementCmd = &cobra.Command{
	Use:   "agreement",
	Short: "Compare computed sentiment ratings with the ratings users gave",
	Args:  cobra.NoArgs,
	RunE:  runAgreement,
}

func init() {
	rootCmd.AddCommand(agreementCmd)
	agreementCmd.Flags().BoolVar(&agreementJSON, "json", false, "output as JSON")
}

func runAgreement(cmd *cobra.Command, args []string) error {
	s, err := openSession(GetConfig(), GetRootDir())
	if err != nil {
		return err
	}
	return newSink(cmd.OutOrStdout(), agreementJSON, nil).Agreement(usecase.Agreement(s.corpus, s.lexicon))
}
