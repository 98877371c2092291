// SPDX-License-Identifier: MIT

package risk

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmc/result"
)

// Analyzer computes risk metrics over a result table.
type Analyzer struct {
	table *result.Table
}

// New binds an analyzer to a table.
func New(t *result.Table) (*Analyzer, error) {
	if t == nil {
		return nil, riskErrorf("New", ErrNotRun)
	}

	return &Analyzer{table: t}, nil
}

// Table returns the analysed table.
func (a *Analyzer) Table() *result.Table { return a.table }

func (a *Analyzer) column(op, name string) ([]float64, error) {
	if name == result.TrialColumn || !a.table.Has(name) {
		return nil, riskErrorf(op, fmt.Errorf("%q: %w", name, ErrUnknownColumn))
	}
	xs, err := a.table.Column(name)
	if err != nil {
		return nil, riskErrorf(op, err)
	}

	return xs, nil
}

func checkConfidence(op string, c float64) error {
	if !(c > 0 && c < 1) {
		return riskErrorf(op, fmt.Errorf("confidence=%g: %w", c, ErrInvalidConfidence))
	}

	return nil
}

// Statistics summarises one output column.
type Statistics struct {
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	P5     float64 `json:"p5"`
	P10    float64 `json:"p10"`
	P25    float64 `json:"p25"`
	P75    float64 `json:"p75"`
	P90    float64 `json:"p90"`
	P95    float64 `json:"p95"`

	// Skewness is G1; NaN below 3 trials, 0 for a constant column.
	Skewness float64 `json:"skewness"`

	// Kurtosis is excess kurtosis G2; NaN below 4 trials, 0 for a constant column.
	Kurtosis float64 `json:"kurtosis"`
}

// MarshalJSON encodes a NaN Skewness or Kurtosis as null.
func (s Statistics) MarshalJSON() ([]byte, error) {
	type plain Statistics

	return json.Marshal(struct {
		plain
		Skewness *float64 `json:"skewness"`
		Kurtosis *float64 `json:"kurtosis"`
	}{plain: plain(s), Skewness: finite(s.Skewness), Kurtosis: finite(s.Kurtosis)})
}

func finite(x float64) *float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return &x
}

// Statistics returns the summary of output.
func (a *Analyzer) Statistics(output string) (Statistics, error) {
	xs, err := a.column("Statistics", output)
	if err != nil {
		return Statistics{}, err
	}
	s := sorted(xs)
	mean, std := stat.MeanStdDev(xs, nil)
	out := Statistics{
		N:      len(xs),
		Mean:   mean,
		Median: quantileSorted(0.5, s),
		Std:    std,
		Min:    floats.Min(xs),
		Max:    floats.Max(xs),
		P5:     quantileSorted(0.05, s),
		P10:    quantileSorted(0.10, s),
		P25:    quantileSorted(0.25, s),
		P75:    quantileSorted(0.75, s),
		P90:    quantileSorted(0.90, s),
		P95:    quantileSorted(0.95, s),
	}
	switch {
	case len(xs) > 1 && out.Min == out.Max:
		out.Skewness, out.Kurtosis = 0, 0
	default:
		out.Skewness, out.Kurtosis = math.NaN(), math.NaN()
		if len(xs) >= 3 {
			out.Skewness = stat.Skew(xs, nil)
		}
		if len(xs) >= 4 {
			out.Kurtosis = stat.ExKurtosis(xs, nil)
		}
	}

	return out, nil
}

// Interval is a two-sided quantile interval.
type Interval struct {
	Confidence float64 `json:"confidence"`
	Lower      float64 `json:"lower"`
	Upper      float64 `json:"upper"`
}

// ConfidenceInterval returns [q(α/2), q(1−α/2)] with α = 1 − confidence.
func (a *Analyzer) ConfidenceInterval(output string, confidence float64) (Interval, error) {
	if err := checkConfidence("ConfidenceInterval", confidence); err != nil {
		return Interval{}, err
	}
	xs, err := a.column("ConfidenceInterval", output)
	if err != nil {
		return Interval{}, err
	}
	s := sorted(xs)
	alpha := 1 - confidence

	return Interval{
		Confidence: confidence,
		Lower:      quantileSorted(alpha/2, s),
		Upper:      quantileSorted(1-alpha/2, s),
	}, nil
}

// VaR holds Value-at-Risk figures at one confidence level.
type VaR struct {
	Confidence float64 `json:"confidence"`

	// Absolute is the (1 − confidence) quantile of the output itself.
	Absolute float64 `json:"absolute"`

	// HasReturns is set by ValueAtRiskFrom; Percentage and CVaR are zero otherwise.
	HasReturns bool    `json:"has_returns"`
	Initial    float64 `json:"initial"`

	// Percentage is the (1 − confidence) quantile of (x − initial)/initial.
	Percentage float64 `json:"percentage"`

	// CVaR is the mean of the returns at or below Percentage.
	CVaR float64 `json:"cvar"`
}

// ValueAtRisk returns the absolute VaR of output.
func (a *Analyzer) ValueAtRisk(output string, confidence float64) (VaR, error) {
	if err := checkConfidence("ValueAtRisk", confidence); err != nil {
		return VaR{}, err
	}
	xs, err := a.column("ValueAtRisk", output)
	if err != nil {
		return VaR{}, err
	}

	return VaR{Confidence: confidence, Absolute: Quantile(1-confidence, xs)}, nil
}

// ValueAtRiskFrom adds return-based VaR and CVaR relative to initial.
func (a *Analyzer) ValueAtRiskFrom(output string, confidence, initial float64) (VaR, error) {
	if initial == 0 || math.IsNaN(initial) || math.IsInf(initial, 0) {
		return VaR{}, riskErrorf("ValueAtRiskFrom", fmt.Errorf("initial=%g: %w", initial, ErrInvalidInitialValue))
	}
	v, err := a.ValueAtRisk(output, confidence)
	if err != nil {
		return VaR{}, err
	}
	xs, _ := a.table.Column(output)
	returns := make([]float64, len(xs))
	for i, x := range xs {
		returns[i] = (x - initial) / initial
	}
	v.HasReturns = true
	v.Initial = initial
	v.Percentage = Quantile(1-confidence, returns)

	tail := make([]float64, 0, len(returns))
	for _, r := range returns {
		if r <= v.Percentage {
			tail = append(tail, r)
		}
	}
	v.CVaR = v.Percentage
	if len(tail) > 0 {
		v.CVaR = floats.Sum(tail) / float64(len(tail))
	}

	return v, nil
}

// Direction selects the side of a target.
type Direction int

const (
	// Above counts trials with value ≥ target.
	Above Direction = iota
	// Below counts trials with value ≤ target.
	Below
)

// String returns "above" or "below".
func (d Direction) String() string {
	if d == Below {
		return "below"
	}

	return "above"
}

// ParseDirection maps "above"/"below" to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "above":
		return Above, nil
	case "below":
		return Below, nil
	}

	return Above, fmt.Errorf("%q: %w", s, ErrInvalidDirection)
}

// ProbabilityOfTarget returns the fraction of trials on the dir side of
// target, boundary included.
func (a *Analyzer) ProbabilityOfTarget(output string, target float64, dir Direction) (float64, error) {
	xs, err := a.column("ProbabilityOfTarget", output)
	if err != nil {
		return 0, err
	}
	hits := 0
	for _, x := range xs {
		if (dir == Below && x <= target) || (dir != Below && x >= target) {
			hits++
		}
	}

	return float64(hits) / float64(len(xs)), nil
}

// Sensitivity is one input's contribution to the variance of an output.
type Sensitivity struct {
	Variable             string  `json:"variable"`
	Correlation          float64 `json:"correlation"`
	RankCorrelation      float64 `json:"rank_correlation"`
	VarianceContribution float64 `json:"variance_contribution"`
	VariancePct          float64 `json:"variance_pct"`
}

// Sensitivity ranks every input of the table by squared Pearson correlation
// with output, descending. Ties keep registration order. A zero-variance
// input or output has correlation 0.
func (a *Analyzer) Sensitivity(output string) ([]Sensitivity, error) {
	ys, err := a.column("Sensitivity", output)
	if err != nil {
		return nil, err
	}
	yr := ranks(ys)

	inputs := a.table.Inputs()
	out := make([]Sensitivity, 0, len(inputs))
	var total float64
	for _, name := range inputs {
		xs, _ := a.table.Column(name)
		r := pearson(xs, ys)
		s := Sensitivity{
			Variable:             name,
			Correlation:          r,
			RankCorrelation:      pearson(ranks(xs), yr),
			VarianceContribution: r * r,
		}
		total += s.VarianceContribution
		out = append(out, s)
	}
	if total > 0 {
		for i := range out {
			out[i].VariancePct = out[i].VarianceContribution / total * 100
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].VarianceContribution > out[j].VarianceContribution
	})

	return out, nil
}

// pearson is stat.Correlation with 0 for a constant series.
func pearson(x, y []float64) float64 {
	if len(x) < 2 || constant(x) || constant(y) {
		return 0
	}

	return stat.Correlation(x, y, nil)
}

func constant(xs []float64) bool { return floats.Min(xs) == floats.Max(xs) }
