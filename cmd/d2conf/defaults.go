package main

import (
	"github.com/0xalexb/d2conf/d2"

	"github.com/spf13/cobra"
)

func newDefaultsCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "defaults",
		Short: "Print the configuration used when the document is empty",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeConfig(cmd.OutOrStdout(), d2.Default(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", outputTOML, "output format: toml or yaml")

	return cmd
}
