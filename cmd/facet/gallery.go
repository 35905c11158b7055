package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/app"
	"github.com/facetui/facet/internal/components"
	"github.com/facetui/facet/internal/dom"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	var (
		outPath string
		title   string
		scale   float64
	)

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Render the sample gallery page as HTML",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := loadSettings(flags)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("scale") {
				settings.Scale = scale
			}
			if outPath != "" {
				settings.Output.Path = outPath
			}
			if title != "" {
				settings.Output.Title = title
			}

			sheet := dom.NewStyleSheet()
			ctx := components.NewContext(settings.ContextOptions(sheet))
			doc, err := app.New(ctx, log, settings.Output.Title).RenderDocument()
			if err != nil {
				return fmt.Errorf("failed to build gallery: %w", err)
			}

			out := cmd.OutOrStdout()
			if settings.Output.Path != "" {
				f, err := os.Create(settings.Output.Path)
				if err != nil {
					return fmt.Errorf("failed to create output file: %w", err)
				}
				defer f.Close()
				out = f
			}

			if err := doc.WriteHTML(out); err != nil {
				return fmt.Errorf("failed to write gallery: %w", err)
			}

			log.With("path", settings.Output.Path).Debug("gallery rendered")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write the page to a file instead of stdout")
	cmd.Flags().StringVar(&title, "title", "", "Document title of the rendered page")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, "Scale factor applied to every pixel dimension")

	return cmd
}
