// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvmc/report"
	"github.com/katalvlaran/lvmc/risk"
	"github.com/katalvlaran/lvmc/scenario"
	"github.com/katalvlaran/lvmc/simulation"
)

// runSummary is the --json payload of the run command.
type runSummary struct {
	RunID        string             `json:"run_id"`
	Scenario     string             `json:"scenario,omitempty"`
	Seed         uint64             `json:"seed"`
	Iterations   int                `json:"iterations"`
	Output       string             `json:"output"`
	Correlated   bool               `json:"correlated"`
	Repaired     bool               `json:"repaired"`
	MaxDeviation float64            `json:"max_deviation"`
	Statistics   risk.Statistics    `json:"statistics"`
	Intervals    []risk.Interval    `json:"intervals"`
	VaR          *risk.VaR          `json:"var,omitempty"`
	Targets      map[string]float64 `json:"targets,omitempty"`
	Sensitivity  []risk.Sensitivity `json:"sensitivity,omitempty"`
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario file and print its risk report",
		Long: `Run loads a YAML scenario, samples its variables, evaluates the model
once per trial and prints a report on the chosen output.

Examples:
  lvmc run --config examples/dcf.yaml
  lvmc run --config examples/dcf.yaml --iterations 20000 --seed 7 --csv trials.csv
  lvmc run --config examples/dcf.yaml --json`,
		RunE: runScenario,
	}
	cmd.Flags().StringP("config", "c", "", "Scenario YAML file (required)")
	cmd.Flags().IntP("iterations", "n", 0, "Override the scenario iteration count")
	cmd.Flags().Uint64("seed", 0, "Override the scenario seed")
	cmd.Flags().String("csv", "", "Write the full trial table to this CSV file")
	cmd.Flags().String("output", "", "Override the reported output column")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func runScenario(cmd *cobra.Command, _ []string) error {
	path, _ := cmd.Flags().GetString("config")
	jsonOut, _ := cmd.Flags().GetBool("json")
	level, _ := cmd.Flags().GetString("log-level")
	dev, _ := cmd.Flags().GetBool("log-dev")

	logger := newLogger(level, dev)
	defer func() { _ = logger.Sync() }()

	sc, err := scenario.LoadFromFile(path)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("iterations") {
		sc.Iterations, _ = cmd.Flags().GetInt("iterations")
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if err = sc.Validate(); err != nil {
		return err
	}
	output := sc.ReportOutput()
	if o, _ := cmd.Flags().GetString("output"); o != "" {
		output = o
	}

	sim, model, err := sc.Build(simulation.WithLogger(logger.With(zap.String("scenario", sc.Name))))
	if err != nil {
		return err
	}
	tbl, err := sim.Run(model, sc.Iterations)
	if err != nil {
		return err
	}
	if output == "" {
		outs := tbl.Outputs()
		if len(outs) == 0 {
			return fmt.Errorf("model produced no outputs")
		}
		output = outs[0]
	}

	if csvPath, _ := cmd.Flags().GetString("csv"); csvPath != "" {
		if err = writeCSV(csvPath, sim); err != nil {
			return err
		}
		logger.Info("trial table written", zap.String("path", csvPath), zap.Int("rows", tbl.Len()))
	}

	an, err := sim.Analyzer()
	if err != nil {
		return err
	}
	opts := sc.ReportOptions()
	if jsonOut {
		sum, err := summarize(an, sc, output, opts)
		if err != nil {
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(sum)
	}

	return report.Write(cmd.OutOrStdout(), an, output, opts)
}

func writeCSV(path string, sim *simulation.Simulation) error {
	tbl, err := sim.Results()
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating csv file: %w", err)
	}
	if err = tbl.WriteCSV(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func summarize(an *risk.Analyzer, sc *scenario.Scenario, output string, opts report.Options) (*runSummary, error) {
	tbl := an.Table()
	st, err := an.Statistics(output)
	if err != nil {
		return nil, err
	}
	sum := &runSummary{
		RunID:        tbl.RunID.String(),
		Scenario:     sc.Name,
		Seed:         tbl.Seed,
		Iterations:   tbl.Len(),
		Output:       output,
		Correlated:   tbl.Correlated,
		Repaired:     tbl.Repaired,
		MaxDeviation: tbl.MaxDeviation,
		Statistics:   st,
	}
	for _, c := range opts.Confidences {
		ci, err := an.ConfidenceInterval(output, c)
		if err != nil {
			return nil, err
		}
		sum.Intervals = append(sum.Intervals, ci)
	}
	if opts.Initial != 0 {
		v, err := an.ValueAtRiskFrom(output, opts.VaRConfidence, opts.Initial)
		if err != nil {
			return nil, err
		}
		sum.VaR = &v
	}
	if len(opts.Targets) > 0 {
		sum.Targets = make(map[string]float64, len(opts.Targets))
		for _, t := range opts.Targets {
			p, err := an.ProbabilityOfTarget(output, t, risk.Above)
			if err != nil {
				return nil, err
			}
			sum.Targets[fmt.Sprintf("%g", t)] = p
		}
	}
	if opts.Sensitivity {
		if sum.Sensitivity, err = an.Sensitivity(output); err != nil {
			return nil, err
		}
	}

	return sum, nil
}
