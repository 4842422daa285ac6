package cmd

import (
	"github.com/spf13/cobra"
)

// themeCmd scaffolds a theme called NAME in the WordPress root in the current directory.
var themeCmd = &cobra.Command{
	Use:   "theme NAME",
	Short: "Create a new Wordless theme called NAME",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return reported(newOrchestrator().Theme(cmd.Context(), ".", args[0]))
	},
}
