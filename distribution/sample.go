// SPDX-License-Identifier: MIT

package distribution

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// law is the minimal surface shared by gonum distuv laws and the local wrappers.
type law interface {
	Rand() float64
}

// pertTol is the relative distance, in units of high-low, under which the
// PERT mode counts as equal to the PERT mean.
const pertTol = 1e-9

// quantiler is implemented by the laws that have a closed-form inverse CDF.
type quantiler interface {
	Quantile(p float64) float64
}

// point is a degenerate law concentrated on v (e.g. triangular with low == high).
type point struct{ v float64 }

func (p point) Rand() float64             { return p.v }
func (p point) Quantile(_ float64) float64 { return p.v }

// pertLaw draws Beta(α, β) on [0,1] and rescales it to [low, low+span].
type pertLaw struct {
	beta      distuv.Beta
	low, span float64
}

func (p pertLaw) Rand() float64 { return p.low + p.beta.Rand()*p.span }

// pertShape returns the Beta shape parameters for PERT(low, mode, high, λ).
// When the mode sits on the PERT mean (within rounding) the symmetric shape
// λ/2+1 is used, which also avoids the 0/0 in the general formula.
// ok is false when either shape is not strictly positive.
func pertShape(low, mode, high, lambda float64) (alpha, beta float64, ok bool) {
	mean := (low + lambda*mode + high) / (lambda + 2)
	if math.Abs(mode-mean) <= pertTol*(high-low) {
		alpha = lambda/2 + 1
		return alpha, alpha, alpha > 0
	}
	alpha = (mean - low) * (2*mode - low - high) / ((mode - mean) * (high - low))
	beta = alpha * (high - mean) / (mean - low)

	return alpha, beta, alpha > 0 && beta > 0
}

// lognormalShape converts the arithmetic mean/std of X into (μ, σ) of ln X.
func lognormalShape(mean, std float64) (mu, sigma float64) {
	cv := std / mean
	sigma = math.Sqrt(math.Log(1 + cv*cv))
	mu = math.Log(mean) - sigma*sigma/2

	return mu, sigma
}

// build resolves the declaration into a concrete law driven by src (src may be
// nil for quantile-only use).
func (d *Distribution) build(src rand.Source) (law, error) {
	s, err := d.resolve()
	if err != nil {
		return nil, err
	}

	switch d.family {
	case Normal:
		return distuv.Normal{Mu: s.mean, Sigma: s.std, Src: src}, nil
	case LogNormal:
		mu, sigma := lognormalShape(s.mean, s.std)
		return distuv.LogNormal{Mu: mu, Sigma: sigma, Src: src}, nil
	case Uniform:
		return distuv.Uniform{Min: s.low, Max: s.high, Src: src}, nil
	case Triangular:
		if s.low == s.high {
			return point{v: s.low}, nil
		}
		return distuv.NewTriangle(s.low, s.high, s.mode, src), nil
	case PERT:
		if s.low == s.high {
			return point{v: s.low}, nil
		}
		a, b, ok := pertShape(s.low, s.mode, s.high, s.lambda)
		if !ok {
			return nil, familyErrorf(d.name, fmt.Errorf("pert shape alpha=%g beta=%g: %w", a, b, ErrInvalidParameter))
		}
		return pertLaw{beta: distuv.Beta{Alpha: a, Beta: b, Src: src}, low: s.low, span: s.high - s.low}, nil
	}

	return nil, familyErrorf(d.name, ErrUnsupportedDistribution)
}

// Sample draws n independent values using src as the only randomness.
//
// Errors:
//   - ErrInvalidCount (n ≤ 0), ErrNilSource.
//   - ErrUnsupportedDistribution, ErrMissingParameter, ErrInvalidParameter.
//
// Determinism:
//   - The same source state yields the same draws.
//
// Complexity: O(n).
func (d *Distribution) Sample(n int, src rand.Source) ([]float64, error) {
	if n <= 0 {
		return nil, familyErrorf(d.name, fmt.Errorf("n=%d: %w", n, ErrInvalidCount))
	}
	if src == nil {
		return nil, familyErrorf(d.name, ErrNilSource)
	}
	l, err := d.build(src)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = l.Rand()
	}

	return out, nil
}

// Quantile evaluates the inverse CDF at p ∈ [0, 1].
// Only normal, triangular and uniform are supported; other families return
// ErrNoInverseCDF.
func (d *Distribution) Quantile(p float64) (float64, error) {
	xs, err := d.Quantiles([]float64{p})
	if err != nil {
		return 0, err
	}

	return xs[0], nil
}

// Quantiles maps every probability in ps through the inverse CDF, validating
// the declaration once.
func (d *Distribution) Quantiles(ps []float64) ([]float64, error) {
	if !d.HasInverseCDF() {
		if _, ok := required[d.family]; !ok {
			return nil, familyErrorf(d.name, ErrUnsupportedDistribution)
		}
		return nil, familyErrorf(d.name, fmt.Errorf("%s: %w", d.family, ErrNoInverseCDF))
	}
	l, err := d.build(nil)
	if err != nil {
		return nil, err
	}
	q := l.(quantiler)

	out := make([]float64, len(ps))
	for i, p := range ps {
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, familyErrorf(d.name, fmt.Errorf("p=%g: %w", p, ErrInvalidProbability))
		}
		out[i] = q.Quantile(p)
	}

	return out, nil
}
