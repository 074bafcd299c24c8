// Package cmd - sweep command
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"pouch-cost/adapters/cli"
	"pouch-cost/core/scenario"
)

// newSweepCmd reprices one job across values of a single parameter
func newSweepCmd(opts *rootOptions) *cobra.Command {
	var (
		presetID string
		param    string
		values   []float64
	)

	params := make([]string, 0, len(scenario.Params()))
	for _, p := range scenario.Params() {
		params = append(params, string(p))
	}

	cmd := &cobra.Command{
		Use:   "sweep [job-file]",
		Short: "Reprice a job across values of one parameter",
		Long: `Reprice the first job of a file, or a preset, once per value.

Parameters: ` + strings.Join(params, ", ") + `

Examples:
  pouch-cost sweep jobs.hcl --param quantity_pieces --values 50000,100000,200000
  pouch-cost sweep --preset pharma --param margin --values 20,25,30`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src := cli.Sources{Files: args}
			if presetID != "" {
				src.Presets = []string{presetID}
			}
			return opts.adapter(cmd).Sweep(cmd.Context(), src, param, values)
		},
	}

	cmd.Flags().StringVarP(&presetID, "preset", "p", "", "sweep a built-in preset")
	cmd.Flags().StringVar(&param, "param", "", "parameter to vary ("+strings.Join(params, ", ")+")")
	cmd.Flags().Float64SliceVar(&values, "values", nil, "comma-separated values to try")
	_ = cmd.MarkFlagRequired("param")
	_ = cmd.MarkFlagRequired("values")
	return cmd
}
