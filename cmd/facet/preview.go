package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/facetui/facet/internal/tui"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var scale float64

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Browse the scale and icons in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, log, err := loadSettings(flags)
			if err != nil {
				return err
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("preview requires an interactive terminal")
			}

			if cmd.Flags().Changed("scale") {
				settings.Scale = scale
			}

			log.With("scale", settings.Scale).Debug("starting preview")

			p := tea.NewProgram(tui.NewModel(settings.Scale), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("failed to run preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1.0, "Initial preview scale factor")

	return cmd
}
