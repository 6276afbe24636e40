package main

import (
	"fmt"

	"github.com/anggasct/points/layout"
	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a layout file for consistency",
		Long:  `Decodes the layout file and reports unknown fields, duplicate names and junctions whose arms are not distinct cardinal directions.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			y, err := layout.Load(file)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "layout is valid: %d junctions\n", len(y.Junctions))
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "layout.yaml", "Layout file")
	return cmd
}
