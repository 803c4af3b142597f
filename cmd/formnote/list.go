package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available form schemas",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			reg, err := a.registry(cmd, nil)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tFIELDS\tOUTPUT")
			for _, schema := range reg.List() {
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", schema.ID, schema.Title, len(schema.Fields), schema.OutputPath())
			}
			return w.Flush()
		},
	}
}
