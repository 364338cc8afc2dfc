// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/webgen/cli/internal/config"
	"github.com/webgen/cli/internal/output"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Tool configuration (loaded during PersistentPreRunE)
	toolConfig *config.Config
)

// NewRootCmd creates the root command for the webgen CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "webgen",
		Short:         "Scaffold Node.js web applications",
		Long:          `webgen scaffolds opinionated Node.js web application projects and keeps re-runs safe for existing ones.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: WEBGEN_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads the tool configuration.
func initializeGlobals() error {
	output.SetupLogging(verboseFlag)

	cfg, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		// A broken tool config must not block generation; defaults apply.
		output.Warn("config load failed, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}
	toolConfig = cfg

	return nil
}
