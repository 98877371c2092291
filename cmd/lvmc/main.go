// SPDX-License-Identifier: MIT

// Command lvmc runs Monte Carlo valuation scenarios described in YAML and
// prints a risk report.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lvmc",
		Short: "Monte Carlo correlated sampling and risk aggregation",
		Long: `lvmc samples correlated input variables, evaluates a valuation model
once per trial and summarises the output distribution: percentiles,
confidence intervals, VaR/CVaR, target probabilities and input sensitivity.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-dev", false, "Human-readable development logs")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
