package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/theted/aws-concept-map/layout"
	"github.com/theted/aws-concept-map/textwidth"
)

func layoutCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Compute node positions headlessly and print them",
		Long: "layout runs the placement pass without opening a terminal UI.\n" +
			"Useful for inspecting the grid and for checking a dataset's layout\n" +
			"in scripts.",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger()

			cat, cfg, err := loadInputs(logger)
			if err != nil {
				return err
			}

			widths := textwidth.Measure(cat.Labels())
			layoutCfg := cfg.LayoutConfig()
			if len(layoutCfg.CategoryOrder) == 0 {
				layoutCfg.CategoryOrder = cat.CategoryOrder()
			}
			result := layout.Compute(cat.Nodes(widths), layoutCfg)

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KEY\tCATEGORY\tX\tY\tW\tH")
			for _, n := range result.Nodes {
				fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.0f\t%.0f\n",
					n.Key, n.Category, n.X, n.Y, n.Width, n.Height)
			}
			if err := w.Flush(); err != nil {
				return err
			}

			fmt.Println()
			for _, g := range result.Groups {
				fmt.Printf("group %-14s %d nodes  bounds (%.1f, %.1f) %.0fx%.0f\n",
					g.Category, len(g.Keys), g.Bounds.X, g.Bounds.Y,
					g.Bounds.Width, g.Bounds.Height)
			}

			if check {
				if pairs := layout.ValidateAll(result.Nodes); len(pairs) > 0 {
					for _, p := range pairs {
						fmt.Fprintf(os.Stderr, "overlap: %s and %s\n", p.A, p.B)
					}
					return fmt.Errorf("%d overlapping node pairs", len(pairs))
				}
				fmt.Println("\nno overlaps")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Fail if any two nodes overlap")
	return cmd
}
