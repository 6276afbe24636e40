package main

import (
	"fmt"

	"github.com/anggasct/points"
	"github.com/anggasct/points/layout"
	"github.com/anggasct/points/visualization"
	"github.com/spf13/cobra"
)

func newGraphCmd() *cobra.Command {
	var (
		format   string
		file     string
		junction string
	)
	cmd := &cobra.Command{
		Use:   "graph [type]",
		Short: "Export a switching table as a diagram",
		Long: `Outputs a Graphviz (dot, svg) or Mermaid diagram of a junction type's switching table.
With --junction the diagram is drawn for a junction of the layout file, labelled with its arm directions.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				t points.JunctionType
				j *points.Junction
			)
			switch {
			case junction != "":
				y, err := layout.Load(file)
				if err != nil {
					return err
				}
				junctions, err := y.Build()
				if err != nil {
					return err
				}
				if j = junctions[junction]; j == nil {
					return fmt.Errorf("junction %q not found in %s", junction, file)
				}
				t = j.Type()
			case len(args) == 1:
				parsed, err := points.ParseJunctionType(args[0])
				if err != nil {
					return err
				}
				t = parsed
			default:
				return fmt.Errorf("graph needs a junction type or --junction")
			}

			out, err := render(t, j, format)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().StringVar(&format, "format", "dot", "Output format (dot, svg, mermaid)")
	cmd.Flags().StringVarP(&file, "file", "f", "layout.yaml", "Layout file used with --junction")
	cmd.Flags().StringVar(&junction, "junction", "", "Name of a layout junction to draw")
	return cmd
}

// render draws j when set, otherwise the bare table of t
func render(t points.JunctionType, j *points.Junction, format string) (string, error) {
	switch format {
	case "dot", "svg":
		g := visualization.NewDOTGenerator(t)
		if j != nil {
			g = visualization.NewJunctionDOTGenerator(j)
		}
		if format == "svg" {
			return g.GenerateSVG()
		}
		return g.Generate()
	case "mermaid":
		if j != nil {
			return visualization.GenerateJunctionMermaid(j)
		}
		return visualization.GenerateMermaid(t)
	}
	return "", fmt.Errorf("unknown format %q", format)
}
