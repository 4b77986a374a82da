package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/newwdead/cardkit/pkg/phonefmt"
)

func phoneCmd() *cobra.Command {
	var searchKey bool

	cmd := &cobra.Command{
		Use:   "phone <number>...",
		Short: "Display-format or search-normalize phone numbers",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, number := range args {
				if searchKey {
					fmt.Fprintln(cmd.OutOrStdout(), phonefmt.NormalizeForSearch(number))
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), phonefmt.FormatForDisplay(number))
			}
		},
	}

	cmd.Flags().BoolVar(&searchKey, "search-key", false, "print the canonical search key instead of the display form")
	return cmd
}
