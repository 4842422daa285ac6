package cmd

import (
	"github.com/spf13/cobra"
)

// installCmd provisions the plugin into the WordPress root in the current directory.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the Wordless plugin into the current WordPress installation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(newOrchestrator().Install(cmd.Context(), "."))
	},
}
