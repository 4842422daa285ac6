package cmd

import (
	"github.com/spf13/cobra"

	"wordless/internal/installer"
)

// wpOpts collects the flags of `wp`; they become an installer.WPOptions.
var wpOpts installer.WPOptions

// wpCmd downloads the latest WordPress into DIR_NAME (default "wordpress").
var wpCmd = &cobra.Command{
	Use:   "wp [DIR_NAME]",
	Short: "Download the latest WordPress into DIR_NAME",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := wpOpts
		opts.Dir = installer.DefaultDir
		if len(args) == 1 {
			opts.Dir = args[0]
		}
		return reported(newOrchestrator().WP(cmd.Context(), opts))
	},
}

func init() {
	wpCmd.Flags().StringVarP(&wpOpts.Locale, "locale", "l", "", "WordPress locale, e.g. it_IT (server default when empty)")
	wpCmd.Flags().BoolVarP(&wpOpts.Bare, "bare", "b", false, "Remove the default themes and plugins")
}
