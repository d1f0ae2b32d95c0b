// Package cli implements the census2011 command line.
//
// Every registered dataset becomes a subcommand taking its input files and an
// output stub as positional arguments:
//
//	census2011 age MALE.csv FEMALE.csv out/age
//	census2011 households HOUSEHOLDS.csv out/households
//	census2011 custom --dataset-file dwellings.yaml DWELLINGS.csv out/dwellings
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/census2011/internal/config"
	"github.com/JonMunkholm/census2011/internal/core"
)

// runFlags holds the persistent flags shared by every dataset command.
type runFlags struct {
	encoding string
	xlsx     bool
}

// NewRootCmd builds the command tree from the registered datasets.
func NewRootCmd(cfg *config.Config, stdout, stderr io.Writer) *cobra.Command {
	flags := &runFlags{}

	root := &cobra.Command{
		Use:           "census2011",
		Short:         "Split Census 2011 extracts into one CSV per geography tier",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	// Subcommands inherit this, so a bad flag prints the usage line like a bad argument count
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &core.ConfigError{Op: "args", Err: err}
	})

	root.PersistentFlags().StringVar(&flags.encoding, "encoding", cfg.Input.Encoding, "Input encoding: utf-8, latin1 or windows-1252")
	root.PersistentFlags().BoolVar(&flags.xlsx, "xlsx", cfg.Output.XLSX, "Also write <stub>.xlsx with one sheet per tier")

	for _, ds := range core.All() {
		root.AddCommand(newDatasetCmd(ds, flags))
	}
	root.AddCommand(newCustomCmd(flags))
	root.AddCommand(newDatasetsCmd())

	return root
}

// Execute runs the command line and returns the process exit status.
// Configuration errors print the usage of the failing command to stderr.
func Execute(ctx context.Context, cfg *config.Config, args []string, stdout, stderr io.Writer) int {
	root := NewRootCmd(cfg, stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	fmt.Fprintf(stderr, "error: %v\n", err)
	if core.IsConfigError(err) && cmd != nil {
		fmt.Fprintf(stderr, "usage: %s\n", cmd.UseLine())
	} else if cmd == root {
		fmt.Fprintf(stderr, "run '%s --help' for usage\n", root.Name())
	}
	return 1
}
