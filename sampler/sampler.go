// SPDX-License-Identifier: MIT

package sampler

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvmc/correlation"
	"github.com/katalvlaran/lvmc/distribution"
	"github.com/katalvlaran/lvmc/matrix"
)

// Open-interval bounds for Φ(z) before inverse-CDF mapping.
var (
	minProb = math.Nextafter(0, 1)
	maxProb = math.Nextafter(1, 0)
)

// Samples is an n×k sample matrix; column j holds draws of Names[j].
type Samples struct {
	Names  []string
	Values *matrix.Dense
}

// Column returns a copy of the draws for name.
func (s *Samples) Column(name string) ([]float64, error) {
	for j, n := range s.Names {
		if n == name {
			return s.Values.Col(j)
		}
	}

	return nil, samplerErrorf("Column", fmt.Errorf("%q: %w", name, ErrUnknownColumn))
}

// Len returns the number of trials.
func (s *Samples) Len() int { return s.Values.Rows() }

// Sampler draws joint samples for a fixed list of variables.
type Sampler struct {
	vars []*distribution.Distribution
	corr *correlation.Matrix
	rng  *rand.Rand
	last *correlation.Factorization
}

// New binds variables, an optional correlation matrix and a generator.
// When corr is non-nil its names must equal the variable names, in order.
func New(vars []*distribution.Distribution, corr *correlation.Matrix, rng *rand.Rand) (*Sampler, error) {
	if len(vars) == 0 {
		return nil, samplerErrorf("New", ErrNoVariables)
	}
	if rng == nil {
		return nil, samplerErrorf("New", ErrNilRNG)
	}
	seen := make(map[string]struct{}, len(vars))
	for i, v := range vars {
		if v == nil {
			return nil, samplerErrorf("New", fmt.Errorf("index %d: %w", i, ErrNilVariable))
		}
		if _, dup := seen[v.Name()]; dup {
			return nil, samplerErrorf("New", fmt.Errorf("%q: %w", v.Name(), ErrDuplicateVariable))
		}
		seen[v.Name()] = struct{}{}
	}
	if corr != nil {
		names := corr.Names()
		if len(names) != len(vars) {
			return nil, samplerErrorf("New", fmt.Errorf("%d names for %d variables: %w", len(names), len(vars), ErrCorrelationMismatch))
		}
		for i, v := range vars {
			if names[i] != v.Name() {
				return nil, samplerErrorf("New", fmt.Errorf("position %d: %q vs %q: %w", i, names[i], v.Name(), ErrCorrelationMismatch))
			}
		}
	}

	return &Sampler{
		vars: append([]*distribution.Distribution(nil), vars...),
		corr: corr,
		rng:  rng,
	}, nil
}

// Names returns the column order.
func (s *Sampler) Names() []string {
	out := make([]string, len(s.vars))
	for i, v := range s.vars {
		out[i] = v.Name()
	}

	return out
}

// Correlated reports whether a correlation matrix is attached.
func (s *Sampler) Correlated() bool { return s.corr != nil }

// Factorization returns the factor used by the last correlated Sample, or nil.
func (s *Sampler) Factorization() *correlation.Factorization { return s.last }

// Sample draws n joint samples.
//
// Errors:
//   - ErrInvalidCount for n ≤ 0.
//   - distribution errors for invalid declarations (checked before any draw).
//   - correlation errors when the factorization or its repair fails.
func (s *Sampler) Sample(n int) (*Samples, error) {
	if n <= 0 {
		return nil, samplerErrorf("Sample", fmt.Errorf("n=%d: %w", n, ErrInvalidCount))
	}
	for _, v := range s.vars {
		if err := v.Validate(); err != nil {
			return nil, samplerErrorf("Sample", err)
		}
	}
	out, err := matrix.NewDense(n, len(s.vars))
	if err != nil {
		return nil, samplerErrorf("Sample", err)
	}
	if s.corr == nil {
		err = s.independent(out)
	} else {
		err = s.correlated(out)
	}
	if err != nil {
		return nil, samplerErrorf("Sample", err)
	}

	return &Samples{Names: s.Names(), Values: out}, nil
}

func (s *Sampler) independent(out *matrix.Dense) error {
	n := out.Rows()
	for j, v := range s.vars {
		xs, err := v.Sample(n, s.rng)
		if err != nil {
			return err
		}
		setCol(out, j, xs)
	}

	return nil
}

func (s *Sampler) correlated(out *matrix.Dense) error {
	f, err := s.corr.Factor()
	if err != nil {
		return err
	}
	s.last = f

	n, k := out.Rows(), len(s.vars)
	Z, err := matrix.NewDense(n, k)
	if err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		for j := 0; j < k; j++ {
			_ = Z.Set(i, j, s.rng.NormFloat64())
		}
	}
	Lt, err := matrix.Transpose(f.L)
	if err != nil {
		return err
	}
	C, err := matrix.Mul(Z, Lt)
	if err != nil {
		return err
	}

	u := make([]float64, n)
	for j, v := range s.vars {
		if !v.HasInverseCDF() {
			xs, err := v.Sample(n, s.rng)
			if err != nil {
				return err
			}
			setCol(out, j, xs)
			continue
		}
		for i := 0; i < n; i++ {
			z, _ := C.At(i, j)
			u[i] = math.Min(math.Max(distuv.UnitNormal.CDF(z), minProb), maxProb)
		}
		xs, err := v.Quantiles(u)
		if err != nil {
			return err
		}
		setCol(out, j, xs)
	}

	return nil
}

func setCol(m *matrix.Dense, j int, xs []float64) {
	for i, x := range xs {
		_ = m.Set(i, j, x)
	}
}

// EmpiricalCorrelation returns the Pearson correlation of the sampled columns.
func EmpiricalCorrelation(s *Samples) (*matrix.Dense, error) {
	c, _, _, err := matrix.Correlation(s.Values)
	if err != nil {
		return nil, samplerErrorf("EmpiricalCorrelation", err)
	}

	return c, nil
}
