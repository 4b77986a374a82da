package main

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/newwdead/cardkit/internal/config"
	"github.com/newwdead/cardkit/pkg/textclean"
	"github.com/newwdead/cardkit/pkg/validator"
)

var errInvalidRecord = errors.New("record has invalid fields")

// jsonReport is the machine-readable output of the validate command.
type jsonReport struct {
	Results map[string]validator.Result `json:"results"`
	Summary validator.Summary           `json:"summary"`
}

func validateCmd() *cobra.Command {
	var (
		asJSON  bool
		strict  bool
		noClean bool
	)

	cmd := &cobra.Command{
		Use:   "validate <record.yaml>",
		Short: "Validate a contact record and print per-field verdicts",
		Long: `Reads a field→value mapping from a YAML file (or stdin with "-"),
cleans OCR noise, and runs the full validation pipeline. With --strict the
command exits non-zero when any field is invalid, for use in ingest scripts.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			log := newLogger(cfg)

			record, err := loadRecord(args[0])
			if err != nil {
				return err
			}
			if !noClean && !cfg.NoClean {
				record = textclean.Record(record)
			}

			policy := validator.NewPolicy()
			results := policy.ValidateAll(record)
			summary := policy.Summarize(record)

			log.Debug("record validated",
				slog.Int("fields", summary.TotalFields),
				slog.Int("valid", summary.ValidFields),
				slog.Int("corrected", summary.CorrectedFields),
				slog.Float64("avg_confidence", summary.AvgConfidence),
				slog.Bool("is_valid", summary.Valid),
			)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(jsonReport{Results: results, Summary: summary}); err != nil {
					return err
				}
			} else {
				renderReport(cmd.OutOrStdout(), results, summary)
			}

			if (strict || cfg.Strict) && !summary.Valid {
				return errInvalidRecord
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit machine-readable JSON")
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the record has invalid fields")
	cmd.Flags().BoolVar(&noClean, "no-clean", false, "skip the OCR text cleanup pass")
	return cmd
}
