// SPDX-License-Identifier: MIT

package simulation

import "go.uber.org/zap"

// Option configures a Simulation.
type Option func(*Simulation)

// WithSeed fixes the generator seed. Seed 0 selects sampler.DefaultSeed.
func WithSeed(seed uint64) Option {
	return func(s *Simulation) { s.seed = seed }
}

// WithLogger sets the logger. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) {
		if l != nil {
			s.log = l
		}
	}
}
