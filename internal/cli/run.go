package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/census2011/internal/core"
)

func newDatasetCmd(ds core.Dataset, flags *runFlags) *cobra.Command {
	return &cobra.Command{
		Use:   ds.Key + " " + ds.Usage(),
		Short: ds.Label,
		Args:  inputArgs(len(ds.Sources)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDataset(cmd, ds, args, flags)
		},
	}
}

func newCustomCmd(flags *runFlags) *cobra.Command {
	var datasetFile string

	cmd := &cobra.Command{
		Use:   "custom --dataset-file FILE <INPUT.csv>... <OUTPUTSTUB>",
		Short: "Process a table described by a YAML dataset file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if datasetFile == "" {
				return &core.ConfigError{Op: "args", Err: fmt.Errorf("--dataset-file is required")}
			}
			ds, err := core.LoadDatasetFile(datasetFile)
			if err != nil {
				return err
			}
			if err := inputArgs(len(ds.Sources))(cmd, args); err != nil {
				return err
			}
			return runDataset(cmd, ds, args, flags)
		},
	}
	cmd.Flags().StringVar(&datasetFile, "dataset-file", "", "YAML dataset definition (required)")

	return cmd
}

// inputArgs requires n input paths followed by the output stub.
func inputArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n+1 {
			return &core.ConfigError{
				Op:  "args",
				Err: fmt.Errorf("accepts %d input file(s) and an output stub, received %d argument(s)", n, len(args)),
			}
		}
		return nil
	}
}

func runDataset(cmd *cobra.Command, ds core.Dataset, args []string, flags *runFlags) error {
	enc, err := core.ParseEncoding(flags.encoding)
	if err != nil {
		return &core.ConfigError{Op: "args", Err: err}
	}

	p, err := core.NewPipeline(ds)
	if err != nil {
		return err
	}

	n := len(ds.Sources)
	_, err = p.Run(cmd.Context(), core.RunOptions{
		Inputs:     args[:n],
		OutputStub: args[n],
		Encoding:   enc,
		Sinks:      core.SinkOptions{XLSX: flags.xlsx},
	})
	return err
}
