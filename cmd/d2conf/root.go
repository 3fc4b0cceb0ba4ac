package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/0xalexb/d2conf/d2"

	"github.com/spf13/cobra"
)

const (
	outputTOML = "toml"
	outputYAML = "yaml"
)

var errUnknownOutput = errors.New("unknown output format")

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "d2conf",
		Short:         "Validate and inspect d2 preprocessor configuration",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd(), newDefaultsCmd(), newVersionCmd())

	return root
}

func writeConfig(w io.Writer, cfg d2.Config, output string) error {
	var (
		data []byte
		err  error
	)

	switch strings.ToLower(output) {
	case outputTOML:
		data, err = cfg.MarshalTOML()
	case outputYAML:
		data, err = cfg.MarshalYAML()
	default:
		return fmt.Errorf("%w: %q", errUnknownOutput, output)
	}

	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
