package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/components"
)

func newScaleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Print the typographic scale",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tSIZE\tLEADING\tWEIGHT\tITALIC\tSTROKE")
			for _, entry := range components.ScaleEntries() {
				font := entry.Font()
				weight := font.Weight
				if weight == "" {
					weight = "-"
				}
				stroke := "-"
				if icon := entry.IconStyle(); icon.HasWeight {
					stroke = fmt.Sprintf("%g", icon.Weight)
				}
				fmt.Fprintf(w, "%s\t%g\t%g\t%s\t%v\t%s\n",
					entry, font.Size, font.Leading, weight, font.Italic, stroke)
			}
			return w.Flush()
		},
	}

	return cmd
}
