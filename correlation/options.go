// SPDX-License-Identifier: MIT

package correlation

// Defaults for Options.
const (
	DefaultEigenFloor = 1e-8
	DefaultMaxRepairs = 6
	DefaultEigenTol   = 1e-12
)

// Options tunes the repair step.
type Options struct {
	// EigenFloor is the smallest eigenvalue kept on the first repair attempt.
	EigenFloor float64

	// MaxRepairs bounds how many times the floor is raised tenfold after
	// the first attempt fails.
	MaxRepairs int

	// EigenTol is the Jacobi off-diagonal convergence threshold.
	EigenTol float64

	// EigenMaxIter is the Jacobi rotation budget; ≤ 0 lets matrix.Eigen choose.
	EigenMaxIter int
}

// DefaultOptions returns the repair settings used by New.
func DefaultOptions() Options {
	return Options{
		EigenFloor: DefaultEigenFloor,
		MaxRepairs: DefaultMaxRepairs,
		EigenTol:   DefaultEigenTol,
	}
}

// normalize replaces unusable fields with defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if !(o.EigenFloor > 0) {
		o.EigenFloor = d.EigenFloor
	}
	if o.MaxRepairs < 0 {
		o.MaxRepairs = 0
	}
	if !(o.EigenTol > 0) {
		o.EigenTol = d.EigenTol
	}

	return o
}
