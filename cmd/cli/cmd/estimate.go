// Package cmd - estimate, compare and summary commands
package cmd

import (
	"github.com/spf13/cobra"

	"pouch-cost/adapters/cli"
)

// newEstimateCmd prices every job it is given
func newEstimateCmd(opts *rootOptions) *cobra.Command {
	var presetIDs []string

	cmd := &cobra.Command{
		Use:   "estimate [job-file...]",
		Short: "Estimate cost and selling price of pouch jobs",
		Long: `Price one or more pouch jobs.

A job file holds one or more jobs and is read by extension: .hcl, .yaml/.yml,
or JSON otherwise. Presets can be priced alongside or instead of files.

Examples:
  pouch-cost estimate jobs.hcl
  pouch-cost estimate --format json order.json
  pouch-cost estimate --preset snacks --preset dairy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.adapter(cmd).Estimate(cmd.Context(), cli.Sources{Files: args, Presets: presetIDs})
		},
	}

	cmd.Flags().StringSliceVarP(&presetIDs, "preset", "p", nil, "price a built-in preset (repeatable)")
	cmd.Flags().BoolP("details", "d", true, "show open size, GSM and weight")
	return cmd
}

// newCompareCmd ranks jobs by cost per pouch
func newCompareCmd(opts *rootOptions) *cobra.Command {
	var presetIDs []string

	cmd := &cobra.Command{
		Use:   "compare [job-file...]",
		Short: "Compare jobs side by side and pick the cheapest per pouch",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.adapter(cmd).Compare(cmd.Context(), cli.Sources{Files: args, Presets: presetIDs})
		},
	}

	cmd.Flags().StringSliceVarP(&presetIDs, "preset", "p", nil, "include a built-in preset (repeatable)")
	return cmd
}

// newSummaryCmd aggregates a batch of jobs
func newSummaryCmd(opts *rootOptions) *cobra.Command {
	var presetIDs []string

	cmd := &cobra.Command{
		Use:   "summary [job-file...]",
		Short: "Summarize a batch of jobs: margins, revenue and popular choices",
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.adapter(cmd).Summary(cmd.Context(), cli.Sources{Files: args, Presets: presetIDs})
		},
	}

	cmd.Flags().StringSliceVarP(&presetIDs, "preset", "p", nil, "include a built-in preset (repeatable)")
	return cmd
}
