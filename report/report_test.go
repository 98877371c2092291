// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmc/models"
	"github.com/katalvlaran/lvmc/report"
	"github.com/katalvlaran/lvmc/risk"
	"github.com/katalvlaran/lvmc/simulation"
)

func analyzer(t *testing.T) *risk.Analyzer {
	t.Helper()
	sim := simulation.New(simulation.WithSeed(42))
	require.NoError(t, sim.AddNormal("revenue", 1000, 100))
	require.NoError(t, sim.AddTriangular("margin", 0.15, 0.20, 0.28))
	_, err := sim.Run(models.Product{Output: "profit", Inputs: []string{"revenue", "margin"}}, 5000)
	require.NoError(t, err)
	a, err := sim.Analyzer()
	require.NoError(t, err)

	return a
}

func TestGenerate_Default(t *testing.T) {
	t.Parallel()

	out, err := report.Generate(analyzer(t), "profit", report.DefaultOptions())
	require.NoError(t, err)
	require.Contains(t, out, "Monte Carlo Simulation Report: profit\n")
	require.Contains(t, out, "Iterations: 5,000\n")
	require.Contains(t, out, "Summary Statistics:")
	require.Contains(t, out, "  Mean:     $")
	require.Contains(t, out, "90% CI:")
	require.Contains(t, out, "95% CI:")
	require.Contains(t, out, "Skewness: ")
	require.NotContains(t, out, "Value at Risk")
	require.NotContains(t, out, "Input Sensitivity")
}

func TestWrite_AllSections(t *testing.T) {
	t.Parallel()

	opts := report.DefaultOptions()
	opts.Initial = 200
	opts.Targets = []float64{150, 250}
	opts.Sensitivity = true

	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, analyzer(t), "profit", opts))
	out := buf.String()
	require.Contains(t, out, "Value at Risk (95%")
	require.Contains(t, out, "CVaR %:")
	require.Contains(t, out, "Target Probabilities:")
	require.Contains(t, out, "Input Sensitivity:")
	require.Contains(t, out, "revenue")
	require.Contains(t, out, "margin")
}

func TestWrite_Errors(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.ErrorIs(t, report.Write(&buf, nil, "x", report.DefaultOptions()), risk.ErrNotRun)
	require.ErrorIs(t, report.Write(&buf, analyzer(t), "x", report.DefaultOptions()), risk.ErrUnknownColumn)

	opts := report.DefaultOptions()
	opts.Confidences = []float64{1.5}
	require.ErrorIs(t, report.Write(&buf, analyzer(t), "profit", opts), risk.ErrInvalidConfidence)
}
