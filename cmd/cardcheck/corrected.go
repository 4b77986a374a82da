package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/newwdead/cardkit/internal/config"
	"github.com/newwdead/cardkit/pkg/textclean"
	"github.com/newwdead/cardkit/pkg/validator"
)

func correctedCmd() *cobra.Command {
	var noClean bool

	cmd := &cobra.Command{
		Use:   "corrected <record.yaml>",
		Short: "Print the auto-corrected record as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			record, err := loadRecord(args[0])
			if err != nil {
				return err
			}
			if !noClean && !cfg.NoClean {
				record = textclean.Record(record)
			}

			corrected := validator.NewPolicy().CorrectedData(record)

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(corrected)
		},
	}

	cmd.Flags().BoolVar(&noClean, "no-clean", false, "skip the OCR text cleanup pass")
	return cmd
}
