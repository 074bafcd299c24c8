// Package cmd provides the CLI commands for pouch-cost.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pouch-cost/adapters/cli"
	"pouch-cost/internal/config"
	"pouch-cost/internal/logging"
)

// version is set at build time with -ldflags "-X pouch-cost/cmd/cli/cmd.version=..."
var version = "0.1.0"

// rootOptions are the persistent flags every subcommand sees
type rootOptions struct {
	cfgFile string
	verbose bool
	format  string
}

// Execute runs the CLI
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "pouch-cost",
		Short: "Estimate manufacturing cost and price of flexible packaging pouches",
		Long: `pouch-cost prices printed, laminated pouches from their dimensions,
film structure, print colours and run quantity.

Every figure is computed with decimal arithmetic and rounded once at the
boundary, so the same job always prices the same.

Examples:
  pouch-cost estimate jobs.hcl
  pouch-cost estimate --preset pharma --format markdown
  pouch-cost sweep jobs.hcl --param quantity_pieces --values 50000,100000,200000
  pouch-cost compare a.yaml b.yaml`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.initConfig()
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (.json, .toml or .yaml; default is built-in)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&opts.format, "format", "f", "", "output format (cli, json, markdown; default from config)")

	// Add subcommands
	rootCmd.AddCommand(newEstimateCmd(opts))
	rootCmd.AddCommand(newSweepCmd(opts))
	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newSummaryCmd(opts))
	rootCmd.AddCommand(newPresetsCmd(opts))
	rootCmd.AddCommand(newRatesCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func (o *rootOptions) initConfig() error {
	cfg := config.Default()
	if o.cfgFile != "" {
		loaded, err := config.Load(o.cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}
	config.Set(cfg)

	// Initialize logging
	logCfg := cfg.Logging
	if o.verbose {
		logCfg.Level = "debug"
	}
	if err := logging.Initialize(logCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	return nil
}

// adapter builds a CLI adapter over the loaded config writing to cmd's output
func (o *rootOptions) adapter(cmd *cobra.Command) *cli.CLIAdapter {
	cfg := *config.Get()
	if f := cmd.Flags().Lookup("details"); f != nil && f.Changed {
		cfg.Output.ShowDetails, _ = cmd.Flags().GetBool("details")
	}

	a := cli.NewCLIAdapter(&cfg, version)
	a.SetOutput(cmd.OutOrStdout())
	a.SetFormat(o.format)
	return a
}

// newVersionCmd prints version information
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "pouch-cost version %s\n", version)
		},
	}
}
