// SPDX-License-Identifier: MIT

package simulation

import (
	"github.com/katalvlaran/lvmc/distribution"
)

// Decl is one variable declaration for Quick.
type Decl struct {
	Name   string
	Family distribution.Family
	Params distribution.Params
}

// DefaultQuickIterations is the trial count Quick uses when n ≤ 0.
const DefaultQuickIterations = 5000

// Quick registers decls in order, runs model once with n trials and returns
// the simulation for analysis.
func Quick(model Model, decls []Decl, n int, seed uint64, opts ...Option) (*Simulation, error) {
	if n <= 0 {
		n = DefaultQuickIterations
	}
	s := New(append([]Option{WithSeed(seed)}, opts...)...)
	for _, d := range decls {
		if err := s.Register(d.Name, d.Family, d.Params); err != nil {
			return nil, err
		}
	}
	if _, err := s.Run(model, n); err != nil {
		return nil, err
	}

	return s, nil
}
