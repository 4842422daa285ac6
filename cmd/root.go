package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"wordless/internal/config"
	"wordless/internal/installer"
	"wordless/internal/logger"
)

// debug flag indicates whether debug logging should be enabled.
// It can be toggled via the `--debug` command-line flag.
var debug bool

// configPath is the optional configuration file passed with `--config`.
var configPath string

// cfg is the effective configuration, loaded before any subcommand runs.
var cfg config.Config

// rootCmd is the base command for the CLI tool `wordless`.
// It sets up the root-level CLI structure and provides global flags.
var rootCmd = &cobra.Command{
	Use:   "wordless",
	Short: "Bootstrap WordPress installations with the Wordless plugin",

	SilenceErrors: true,
	SilenceUsage:  true,

	// PersistentPreRunE runs before any subcommand: it sets up logging and
	// loads the configuration every command works from.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(debug)

		loaded, err := config.Load(config.LoadOptions{FilePath: configPath})
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debug("[DEBUG] Loaded configuration: plugin=%s content_dir=%s\n", cfg.Plugin.Repo, cfg.ContentDir)
		return nil
	},
}

// reportedError marks a failure the orchestrator has already shown to the user.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

// reported wraps err so Execute does not print it a second time.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return reportedError{err: err}
}

// newOrchestrator builds the orchestrator for the loaded configuration.
func newOrchestrator() *installer.Orchestrator {
	return installer.New(cfg)
}

func init() {
	// Register the global flags before any command is executed.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default ./"+config.FileName+" or ~/"+config.FileName+")")

	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(wpCmd)
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the appropriate subcommand and exits with status 1 on failure.
// An interrupt cancels the running step; nothing is rolled back.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		var re reportedError
		if !errors.As(err, &re) {
			logger.Error("[ERROR] %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
