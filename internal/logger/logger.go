package logger

import (
	"github.com/fatih/color" // Import the fatih/color package for colored console output
)

// Define colorized printing functions for different message levels using fatih/color.
// These are package-level variables holding functions that behave like fmt.Printf,
// but with text colored appropriately for the level.

// Info prints informational messages (progress such as "Downloading WordPress...") in green.
var Info = color.New(color.FgGreen).PrintfFunc()

// Success prints the outcome of a completed step in bold bright green.
var Success = color.New(color.FgHiGreen, color.Bold).PrintfFunc()

// Warn prints warning messages in bright magenta.
// Warnings never stop a command, e.g. a failed `git init` after WordPress was installed.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error prints error messages in red. Every failed step reports through here.
var Error = color.New(color.FgRed).PrintfFunc()

// Debug prints debug messages in cyan if enabled, otherwise is a no-op.
// It is assigned during Init based on the --debug flag.
var Debug = func(format string, a ...any) {}

// Init initializes the logger package, specifically enabling or disabling debug logging.
// When enabled, Debug will print messages in cyan color.
// When disabled, Debug silently ignores its arguments.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
