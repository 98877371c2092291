// SPDX-License-Identifier: MIT

package simulation

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/exp/rand"

	"github.com/katalvlaran/lvmc/distribution"
	"github.com/katalvlaran/lvmc/result"
	"github.com/katalvlaran/lvmc/risk"
	"github.com/katalvlaran/lvmc/sampler"
)

// Simulation owns the declarations, the generator and the last result table.
type Simulation struct {
	seed uint64
	rng  *rand.Rand
	log  *zap.Logger

	vars  []*distribution.Distribution
	index map[string]int
	pairs []pairRho

	frozen bool
	table  *result.Table
}

// New returns an empty simulation.
func New(opts ...Option) *Simulation {
	s := &Simulation{
		log:   zap.NewNop(),
		index: make(map[string]int),
	}
	for _, o := range opts {
		o(s)
	}
	if s.seed == 0 {
		s.seed = sampler.DefaultSeed
	}
	s.rng = sampler.NewRNG(s.seed)

	return s
}

// Seed returns the effective generator seed.
func (s *Simulation) Seed() uint64 { return s.seed }

// Run samples n trials, evaluates model on each and stores the table.
//
// Output columns are the key set of trial 0 in sorted order, or exactly
// outputNames when given. Every trial must return the same keys and none
// may reuse an input name.
//
// Errors:
//   - ErrInvalidIterations, ErrNilModel, ErrNoVariables.
//   - distribution and correlation errors from sampling.
//   - ErrOutputShadowsInput, ErrInconsistentOutputs, ErrUnknownOutput.
//   - the Model error, wrapped with the trial index.
//
// Declarations freeze once sampling succeeds; a run rejected earlier (bad
// declarations, infeasible correlation) leaves the registry open. On error
// the previous table, if any, is kept.
func (s *Simulation) Run(model Model, n int, outputNames ...string) (*result.Table, error) {
	if n <= 0 {
		return nil, simulationErrorf(opRun, fmt.Errorf("n=%d: %w", n, ErrInvalidIterations))
	}
	if model == nil {
		return nil, simulationErrorf(opRun, ErrNilModel)
	}
	if len(s.vars) == 0 {
		return nil, simulationErrorf(opRun, ErrNoVariables)
	}
	start := time.Now()

	corr, err := s.correlationMatrix()
	if err != nil {
		return nil, simulationErrorf(opRun, err)
	}
	smp, err := sampler.New(s.vars, corr, s.rng)
	if err != nil {
		return nil, simulationErrorf(opRun, err)
	}
	s.log.Info("simulation started",
		zap.Int("iterations", n),
		zap.Strings("variables", smp.Names()),
		zap.Bool("correlated", smp.Correlated()),
		zap.Uint64("seed", s.seed))

	samples, err := smp.Sample(n)
	if err != nil {
		return nil, simulationErrorf(opRun, err)
	}
	s.frozen = true
	f := smp.Factorization()
	if f != nil && f.Repaired {
		s.log.Warn("correlation matrix not positive definite, repaired",
			zap.Float64("max_deviation", f.MaxDeviation))
	}

	tbl, err := s.evaluate(model, samples, outputNames)
	if err != nil {
		return nil, simulationErrorf(opRun, err)
	}
	tbl.Seed = s.seed
	if f != nil {
		tbl.Correlated = true
		tbl.Repaired = f.Repaired
		tbl.MaxDeviation = f.MaxDeviation
		tbl.Effective = f.Effective
	}
	s.table = tbl

	s.log.Info("simulation finished",
		zap.String("run_id", tbl.RunID.String()),
		zap.Int("iterations", n),
		zap.Strings("outputs", tbl.Outputs()),
		zap.Duration("elapsed", time.Since(start)))

	return tbl, nil
}

// evaluate runs the model over every sampled row and builds the table.
func (s *Simulation) evaluate(model Model, samples *sampler.Samples, outputNames []string) (*result.Table, error) {
	names := samples.Names
	n := samples.Len()

	var (
		tbl     *result.Table
		first   []string
		keys    []string
		outVals []float64
	)
	for i := 0; i < n; i++ {
		row, _ := samples.Values.Row(i)
		inputs := make(map[string]float64, len(names))
		for j, name := range names {
			inputs[name] = row[j]
		}
		out, err := model.Evaluate(inputs)
		if err != nil {
			return nil, fmt.Errorf("trial %d: %w", i, err)
		}

		if i == 0 {
			if first, keys, err = s.outputColumns(out, outputNames); err != nil {
				return nil, err
			}
			if tbl, err = result.New(n, names, keys); err != nil {
				return nil, err
			}
			outVals = make([]float64, len(keys))
			s.log.Debug("output columns detected", zap.Strings("outputs", keys))
		} else if err = sameKeys(out, i, first); err != nil {
			return nil, err
		}
		for j, k := range keys {
			outVals[j] = out[k]
		}
		if err = tbl.SetRow(i, row, outVals); err != nil {
			return nil, err
		}
	}

	return tbl, nil
}

// outputColumns validates the key set of trial 0. It returns that key set
// sorted, and the table's output columns.
func (s *Simulation) outputColumns(out map[string]float64, declared []string) (all, cols []string, err error) {
	all = make([]string, 0, len(out))
	for k := range out {
		if k == result.TrialColumn {
			return nil, nil, fmt.Errorf("%q: %w", k, ErrReservedName)
		}
		if _, ok := s.index[k]; ok {
			return nil, nil, fmt.Errorf("%q: %w", k, ErrOutputShadowsInput)
		}
		all = append(all, k)
	}
	sort.Strings(all)

	if len(declared) == 0 {
		return all, all, nil
	}
	seen := make(map[string]struct{}, len(declared))
	for _, k := range declared {
		if _, ok := out[k]; !ok {
			return nil, nil, fmt.Errorf("%q: %w", k, ErrUnknownOutput)
		}
		if _, dup := seen[k]; dup {
			return nil, nil, fmt.Errorf("%q declared twice: %w", k, ErrUnknownOutput)
		}
		seen[k] = struct{}{}
	}

	return all, append([]string(nil), declared...), nil
}

// sameKeys checks that out has exactly the keys of trial 0.
func sameKeys(out map[string]float64, trial int, first []string) error {
	if len(out) != len(first) {
		return fmt.Errorf("trial %d returned %d keys, trial 0 returned %d: %w", trial, len(out), len(first), ErrInconsistentOutputs)
	}
	for _, k := range first {
		if _, ok := out[k]; !ok {
			return fmt.Errorf("trial %d is missing %q: %w", trial, k, ErrInconsistentOutputs)
		}
	}

	return nil
}

// Results returns the table of the last successful Run.
func (s *Simulation) Results() (*result.Table, error) {
	if s.table == nil {
		return nil, simulationErrorf(opResults, ErrNotRun)
	}

	return s.table, nil
}

// Analyzer returns a risk analyzer over the last successful Run.
func (s *Simulation) Analyzer() (*risk.Analyzer, error) {
	if s.table == nil {
		return nil, simulationErrorf(opAnalyzer, ErrNotRun)
	}

	return risk.New(s.table)
}
