// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvmc/correlation"
	"github.com/katalvlaran/lvmc/distribution"
	"github.com/katalvlaran/lvmc/result"
)

// Pair names two registered variables. Order does not matter.
type Pair struct {
	A, B string
}

// pairRho is one correlation declaration, kept in declaration order.
type pairRho struct {
	Pair
	rho float64
}

// Register declares a variable. The family tag is checked here; parameter
// keys and relations are checked when the first Run samples.
func (s *Simulation) Register(name string, family distribution.Family, params distribution.Params) error {
	d, err := distribution.New(name, family, params)
	if err != nil {
		return simulationErrorf(opRegister, err)
	}

	return s.add(d)
}

// AddNormal registers name ~ N(mean, std²).
func (s *Simulation) AddNormal(name string, mean, std float64) error {
	return s.Register(name, distribution.Normal, distribution.Params{distribution.KeyMean: mean, distribution.KeyStd: std})
}

// AddLogNormal registers a lognormal variable with the given arithmetic mean and std.
func (s *Simulation) AddLogNormal(name string, mean, std float64) error {
	return s.Register(name, distribution.LogNormal, distribution.Params{distribution.KeyMean: mean, distribution.KeyStd: std})
}

// AddTriangular registers name ~ Triangular(low, mode, high).
func (s *Simulation) AddTriangular(name string, low, mode, high float64) error {
	return s.Register(name, distribution.Triangular, distribution.Params{
		distribution.KeyLow: low, distribution.KeyMode: mode, distribution.KeyHigh: high,
	})
}

// AddUniform registers name ~ U(low, high).
func (s *Simulation) AddUniform(name string, low, high float64) error {
	return s.Register(name, distribution.Uniform, distribution.Params{distribution.KeyLow: low, distribution.KeyHigh: high})
}

// AddPERT registers name ~ PERT(low, mode, high) with the default lambda of 4.
func (s *Simulation) AddPERT(name string, low, mode, high float64) error {
	return s.AddPERTLambda(name, low, mode, high, distribution.DefaultPERTLambda)
}

// AddPERTLambda registers a PERT variable with an explicit shape lambda.
func (s *Simulation) AddPERTLambda(name string, low, mode, high, lambda float64) error {
	return s.Register(name, distribution.PERT, distribution.Params{
		distribution.KeyLow: low, distribution.KeyMode: mode, distribution.KeyHigh: high, distribution.KeyLambda: lambda,
	})
}

func (s *Simulation) add(d *distribution.Distribution) error {
	if s.frozen {
		return simulationErrorf(opRegister, ErrRegistryFrozen)
	}
	if d.Name() == result.TrialColumn {
		return simulationErrorf(opRegister, fmt.Errorf("%q: %w", d.Name(), ErrReservedName))
	}
	if _, dup := s.index[d.Name()]; dup {
		return simulationErrorf(opRegister, fmt.Errorf("%q: %w", d.Name(), ErrDuplicateVariable))
	}
	s.index[d.Name()] = len(s.vars)
	s.vars = append(s.vars, d)

	return nil
}

// Variables returns the registered names in registration order.
func (s *Simulation) Variables() []string {
	out := make([]string, len(s.vars))
	for i, d := range s.vars {
		out[i] = d.Name()
	}

	return out
}

// SetCorrelation declares corr(a, b) = rho. Both names must already be
// registered. Redeclaring a pair (in either order) replaces its value.
func (s *Simulation) SetCorrelation(a, b string, rho float64) error {
	if s.frozen {
		return simulationErrorf(opSetCorrelation, ErrRegistryFrozen)
	}
	if err := s.checkPair(a, b, rho); err != nil {
		return simulationErrorf(opSetCorrelation, err)
	}
	s.setPair(a, b, rho)

	return nil
}

// SetCorrelations declares several pairs at once. Every pair is checked
// before any is stored; pairs are applied in sorted (A, B) order.
func (s *Simulation) SetCorrelations(pairs map[Pair]float64) error {
	if s.frozen {
		return simulationErrorf(opSetCorrelation, ErrRegistryFrozen)
	}
	keys := make([]Pair, 0, len(pairs))
	for p, rho := range pairs {
		if err := s.checkPair(p.A, p.B, rho); err != nil {
			return simulationErrorf(opSetCorrelation, err)
		}
		keys = append(keys, p)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].A != keys[j].A {
			return keys[i].A < keys[j].A
		}
		return keys[i].B < keys[j].B
	})
	for _, p := range keys {
		s.setPair(p.A, p.B, pairs[p])
	}

	return nil
}

func (s *Simulation) checkPair(a, b string, rho float64) error {
	for _, n := range []string{a, b} {
		if _, ok := s.index[n]; !ok {
			return fmt.Errorf("%q: %w", n, ErrUnknownVariable)
		}
	}
	if a == b {
		return fmt.Errorf("%q: %w", a, ErrSelfCorrelation)
	}
	if math.IsNaN(rho) || rho < -1 || rho > 1 {
		return fmt.Errorf("%s/%s=%g: %w", a, b, rho, ErrOutOfRange)
	}

	return nil
}

func (s *Simulation) setPair(a, b string, rho float64) {
	for i := range s.pairs {
		p := s.pairs[i].Pair
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			s.pairs[i].rho = rho
			return
		}
	}
	s.pairs = append(s.pairs, pairRho{Pair: Pair{A: a, B: b}, rho: rho})
}

// correlationMatrix assembles the declared pairs over the registry, or
// returns nil when none were declared.
func (s *Simulation) correlationMatrix() (*correlation.Matrix, error) {
	if len(s.pairs) == 0 {
		return nil, nil
	}
	m, err := correlation.New(s.Variables())
	if err != nil {
		return nil, err
	}
	for _, p := range s.pairs {
		if err = m.SetPairwise(p.A, p.B, p.rho); err != nil {
			return nil, err
		}
	}

	return m, nil
}
