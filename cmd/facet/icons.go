package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/assets"
)

func newIconsCmd() *cobra.Command {
	var showMarkup bool

	cmd := &cobra.Command{
		Use:   "icons",
		Short: "List the bundled icon glyphs",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, icon := range assets.Icons() {
				if showMarkup {
					fmt.Fprintf(out, "%s:\n%s\n", icon, assets.Markup(icon))
				} else {
					fmt.Fprintln(out, icon)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showMarkup, "markup", false, "Print each glyph's SVG markup")

	return cmd
}
