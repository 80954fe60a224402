package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"sentilex/config"
	"sentilex/internal/logger"
)

var (
	cfgFile  string
	cfg      *config.Config
	rootDir  string
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "sentilex",
	Short: "Lexicon-based sentiment scoring for review corpora",
	Long: `sentilex loads positive and negative word lists and a CSV of reviews with
user ratings, then scores each review by counting lexicon matches on a 1-5 scale.

Example usage:
  sentilex analyze             # Interactive menu over the whole corpus
  sentilex review 42           # Score a single review
  sentilex words -p negative   # Negative words with match counts
  sentilex agreement           # Compare scores with user ratings`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		if rootDir == "" {
			rootDir, err = os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to get working directory: %w", err)
			}
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		level := cfg.Logging.Level
		if logLevel != "" {
			level = logLevel
		}
		logger.Setup(level, cfg.Logging.Format, cmd.ErrOrStderr())

		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./sentilex.yaml)")
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "d", "", "directory the source paths are relative to (default is current directory)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (default from config)")
}

func GetConfig() *config.Config {
	return cfg
}

func GetRootDir() string {
	return rootDir
}
