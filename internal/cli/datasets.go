package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/census2011/internal/core"
)

func newDatasetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "datasets",
		Short: "List the built-in datasets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tINPUTS\tTIERS\tSCOPE\tVALIDATOR\tLABEL")
			for _, ds := range core.All() {
				labels := make([]string, len(ds.Sources))
				for i, src := range ds.Sources {
					labels[i] = src.Label
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					ds.Key,
					strings.Join(labels, ","),
					ds.Tiers,
					ds.Scope,
					core.DescribeValidator(ds.Validator),
					ds.Label,
				)
			}
			return w.Flush()
		},
	}
}
