package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/newwdead/cardkit/internal/config"
	"github.com/newwdead/cardkit/internal/logger"
)

var (
	flagVerbose bool

	rootCmd = &cobra.Command{
		Use:   "cardcheck",
		Short: "Validate and correct OCR-extracted business-card contacts",
		Long: `cardcheck runs contact records extracted from scanned business cards
through the field validation and correction pipeline: per-field verdicts,
auto-corrections for recoverable OCR noise, and an aggregate summary for
manual-review queues.`,
		SilenceUsage: true,
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(correctedCmd())
	rootCmd.AddCommand(phoneCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newLogger builds the CLI logger from env config, with --verbose forcing
// debug level.
func newLogger(cfg config.Config) *slog.Logger {
	opts := []logger.Option{
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormatName(cfg.LogFormat),
	}
	if flagVerbose {
		opts = append(opts, logger.WithLevel(slog.LevelDebug))
	}
	return logger.New(opts...)
}
