package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/anggasct/points"
	"github.com/spf13/cobra"
)

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table [type...]",
		Short: "Print junction switching tables",
		Long:  `Prints the switching table of each named junction type, or of every type when none is given.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			types := points.JunctionTypes
			if len(args) > 0 {
				types = make([]points.JunctionType, 0, len(args))
				for _, arg := range args {
					t, err := points.ParseJunctionType(arg)
					if err != nil {
						return err
					}
					types = append(types, t)
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, t := range types {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "%s\n", t)
				fmt.Fprintln(w, "STATE\tENTRY\tEXIT\tNEXT")
				for _, row := range t.Transitions() {
					fmt.Fprintf(w, "%d\t%s\t%s\t%d\n", row.State, row.Entry, row.Exit, row.NextState)
				}
			}
			return w.Flush()
		},
	}
}
