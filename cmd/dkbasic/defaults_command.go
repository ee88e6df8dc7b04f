package main

import (
	"github.com/spf13/cobra"

	"github.com/dkbasic/mappings"
)

func newDefaultsCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the settings applied when no valid mappings file exists",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []mappings.DumpOption
			if asJSON {
				opts = append(opts, mappings.AsJSON())
			}
			return mappings.DumpEffective(cmd.OutOrStdout(), mappings.Default(), opts...)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print as JSON")
	return cmd
}
