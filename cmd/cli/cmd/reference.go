// Package cmd - presets, rates and config commands
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pouch-cost/internal/config"
)

// newPresetsCmd lists the built-in presets
func newPresetsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List built-in industry presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.adapter(cmd).ListPresets()
		},
	}
}

// newRatesCmd lists the material rates and densities in effect
func newRatesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rates",
		Short: "Show material rates and densities in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.adapter(cmd).ListRates()
		},
	}
}

// newConfigCmd manages configuration
func newConfigCmd(opts *rootOptions) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the configuration in effect",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			if opts.format == "json" {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(cfg)
			}
			encoder := yaml.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent(2)
			if err := encoder.Encode(cfg); err != nil {
				return err
			}
			return encoder.Close()
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init <path>",
		Short: "Write the default configuration to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}
