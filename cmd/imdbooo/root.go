package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	output := &outputOptions{}

	ctx := newCommandContext(&configFlag, output)

	rootCmd := &cobra.Command{
		Use:           "imdbooo",
		Short:         "Crawl and cache IMDb titles and people",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := output.validate(); err != nil {
				return err
			}
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	flags.StringVarP(&output.titleFormat, "format-title", "t", defaultTitleFormat, "Format string used to print titles")
	flags.StringVarP(&output.personFormat, "format-person", "p", defaultPersonFormat, "Format string used to print people")
	flags.BoolVar(&output.json, "json", false, "Print JSON instead of formatted lines")

	rootCmd.AddCommand(newIndexCommand(ctx))
	rootCmd.AddCommand(newSearchCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newStatsCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
