package cmd

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "k2",
		Short:         "Know2 catalog CLI (k2): sync reference data and query the index",
		Long:          "k2 connects to the Know2 catalog API, synchronizes the reference datasets (expert categories, project/document metadata, taxonomies) into local lookup tables, and runs ad-hoc search queries over the authenticated session.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			app.log = app.log.Level(zerolog.DebugLevel)
		}
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSyncCmd(app),
		newSearchCmd(app),
		newAuthCmd(app),
		newProfileCmd(app),
	)

	return rootCmd
}
