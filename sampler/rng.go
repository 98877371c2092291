// SPDX-License-Identifier: MIT

package sampler

import "golang.org/x/exp/rand"

// DefaultSeed is used when callers pass seed == 0.
const DefaultSeed uint64 = 1

// NewRNG returns a deterministic generator.
// Policy: seed == 0 ⇒ DefaultSeed; otherwise the seed is used verbatim.
//
// The returned *rand.Rand is not goroutine-safe and also serves as the
// rand.Source for gonum distuv laws.
func NewRNG(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}
