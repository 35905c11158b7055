package main

import (
	"github.com/spf13/cobra"

	"github.com/facetui/facet/internal/config"
	"github.com/facetui/facet/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "facet",
		Short:         "Facet renders declarative HTML view fragments",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to a facet configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newScaleCmd())
	cmd.AddCommand(newIconsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadSettings resolves the effective settings and a logger for a command
// invocation. The verbose flag lowers the log level to debug regardless of
// what the configuration file says.
func loadSettings(flags *rootFlags) (*config.Settings, *logger.Logger, error) {
	settings, err := config.Load(flags.configPath)
	if err != nil {
		return nil, nil, err
	}

	level := settings.Log.Level
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, Pretty: settings.Log.Pretty})
	if err != nil {
		return nil, nil, err
	}

	return settings, log, nil
}
