package main

import (
	"wordless/cmd" // CLI commands and execution logic
)

// main is the program entry point.
// It delegates to cmd.Execute() which handles command line argument parsing and execution.
//
// wordless bootstraps WordPress sites built on the Wordless plugin:
//   - `wp` resolves the latest WordPress release, downloads and unpacks it,
//     and optionally strips the bundled themes and plugins
//   - `install` adds the plugin's git repository under wp-content/plugins
//   - `theme` runs the external theme generator
//   - `new` chains all three into a fresh directory
//
// Each command stops at the first failing step and exits with a non-zero status;
// partial installations are left on disk.
func main() {
	cmd.Execute()
}
