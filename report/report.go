// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/leekchan/accounting"

	"github.com/katalvlaran/lvmc/risk"
)

const ruleWidth = 50

// Options selects report sections and money formatting.
type Options struct {
	// Currency is the money symbol; Precision the decimals shown.
	Currency  string
	Precision int

	// Confidences lists the two-sided interval levels.
	Confidences []float64

	// Targets adds a probability-of-target line per value (direction above).
	Targets []float64

	// Initial, when non-zero, adds VaR/CVaR relative to this value at
	// VaRConfidence.
	Initial       float64
	VaRConfidence float64

	// Sensitivity adds the input ranking.
	Sensitivity bool
}

// DefaultOptions returns a dollar report with 90% and 95% intervals.
func DefaultOptions() Options {
	return Options{
		Currency:      "$",
		Precision:     0,
		Confidences:   []float64{0.90, 0.95},
		VaRConfidence: 0.95,
	}
}

// Generate returns the report for output.
func Generate(a *risk.Analyzer, output string, opts Options) (string, error) {
	var b strings.Builder
	if err := Write(&b, a, output, opts); err != nil {
		return "", err
	}

	return b.String(), nil
}

// Write renders the report for output to w.
func Write(w io.Writer, a *risk.Analyzer, output string, opts Options) error {
	if a == nil {
		return fmt.Errorf("report: %w", risk.ErrNotRun)
	}
	st, err := a.Statistics(output)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}
	ac := accounting.Accounting{Symbol: opts.Currency, Precision: opts.Precision}
	money := func(v float64) string { return ac.FormatMoney(v) }

	lines := []string{
		"Monte Carlo Simulation Report: " + output,
		strings.Repeat("=", ruleWidth),
		"Iterations: " + accounting.FormatNumber(st.N, 0, ",", "."),
		"",
		"Summary Statistics:",
		"  Mean:     " + money(st.Mean),
		"  Median:   " + money(st.Median),
		"  Std Dev:  " + money(st.Std),
		"  Min:      " + money(st.Min),
		"  Max:      " + money(st.Max),
		"",
		"Percentiles:",
		"  5th:      " + money(st.P5),
		"  25th:     " + money(st.P25),
		"  75th:     " + money(st.P75),
		"  95th:     " + money(st.P95),
	}

	if len(opts.Confidences) > 0 {
		lines = append(lines, "", "Confidence Intervals:")
		for _, c := range opts.Confidences {
			ci, err := a.ConfidenceInterval(output, c)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			lines = append(lines, fmt.Sprintf("  %2.0f%% CI:   %s - %s", c*100, money(ci.Lower), money(ci.Upper)))
		}
	}

	lines = append(lines,
		"",
		"Distribution Shape:",
		fmt.Sprintf("  Skewness: %.2f", st.Skewness),
		fmt.Sprintf("  Kurtosis: %.2f", st.Kurtosis),
	)

	if opts.Initial != 0 {
		v, err := a.ValueAtRiskFrom(output, opts.VaRConfidence, opts.Initial)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		lines = append(lines,
			"",
			fmt.Sprintf("Value at Risk (%.0f%%, initial %s):", v.Confidence*100, money(v.Initial)),
			"  VaR:      "+money(v.Absolute),
			fmt.Sprintf("  VaR %%:    %.2f%%", v.Percentage*100),
			fmt.Sprintf("  CVaR %%:   %.2f%%", v.CVaR*100),
		)
	}

	if len(opts.Targets) > 0 {
		lines = append(lines, "", "Target Probabilities:")
		for _, t := range opts.Targets {
			p, err := a.ProbabilityOfTarget(output, t, risk.Above)
			if err != nil {
				return fmt.Errorf("report: %w", err)
			}
			lines = append(lines, fmt.Sprintf("  P(%s ≥ %s): %.1f%%", output, money(t), p*100))
		}
	}

	if opts.Sensitivity {
		rows, err := a.Sensitivity(output)
		if err != nil {
			return fmt.Errorf("report: %w", err)
		}
		lines = append(lines, "", "Input Sensitivity:",
			fmt.Sprintf("  %-20s %12s %12s %10s", "variable", "correlation", "rank corr", "var %"))
		for _, r := range rows {
			lines = append(lines, fmt.Sprintf("  %-20s %12.4f %12.4f %9.1f%%", r.Variable, r.Correlation, r.RankCorrelation, r.VariancePct))
		}
	}

	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")

	return err
}
