package main

import (
	"github.com/0xalexb/d2conf"

	"github.com/spf13/cobra"
)

type checkOptions struct {
	file      string
	section   string
	format    string
	output    string
	logLevel  string
	logFormat string
}

func newCheckCmd() *cobra.Command {
	opts := checkOptions{}

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Accept a configuration document and print the resolved configuration",
		Example: `  d2conf check --file book.toml --section preprocessor:d2
  d2conf check --file d2.yaml --output yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := d2conf.LoadConfig(
				d2conf.WithConfigFile(opts.file),
				d2conf.WithSection(opts.section),
				d2conf.WithFormat(opts.format),
				d2conf.WithLogLevel(opts.logLevel),
				d2conf.WithLogFormat(opts.logFormat),
				d2conf.WithLogOutput(cmd.ErrOrStderr()),
			)
			if err != nil {
				return err
			}

			return writeConfig(cmd.OutOrStdout(), cfg, opts.output)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "book.toml", "configuration document")
	flags.StringVarP(&opts.section, "section", "s", "preprocessor:d2", "colon-separated table holding the d2 settings; empty for the document root")
	flags.StringVar(&opts.format, "format", "", "document format: toml, yaml or json (default: from file extension)")
	flags.StringVarP(&opts.output, "output", "o", outputTOML, "output format: toml or yaml")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	return cmd
}
