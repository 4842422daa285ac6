package cmd

import (
	"github.com/spf13/cobra"
)

// newLocale is the `--locale` flag of `new`.
var newLocale string

// newCmd installs a bare WordPress into NAME, then the plugin and a theme
// called NAME. It stops at the first failing step.
var newCmd = &cobra.Command{
	Use:   "new NAME",
	Short: "Create a new Wordless project in NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(newOrchestrator().New(cmd.Context(), args[0], newLocale))
	},
}

func init() {
	newCmd.Flags().StringVarP(&newLocale, "locale", "l", "", "WordPress locale, e.g. it_IT (server default when empty)")
}
