package main

import (
	"fmt"

	"github.com/0xalexb/d2conf"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "d2conf %s (compiled %s)\n", d2conf.Version, d2conf.CompiledAt)

			return err
		},
	}
}
