package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/webgen/cli/internal/config"
	"github.com/webgen/cli/internal/output"
)

// NewConfigCmd creates the config command group.
func NewConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage webgen configuration",
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigPathCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return fmt.Errorf("resolving config path: %w", err)
			}

			if err := config.EnsureHomeDir(); err != nil {
				return fmt.Errorf("creating config directory: %w", err)
			}
			if err := config.WriteDefault(path); err != nil {
				return err
			}

			output.Println(fmt.Sprintf("%s Created %s", output.Checkmark(), path))
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return err
			}

			output.Println(path)
			return nil
		},
	}
}
