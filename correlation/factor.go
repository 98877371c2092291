// SPDX-License-Identifier: MIT

package correlation

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvmc/matrix"
)

// Factorization is the outcome of Factor.
type Factorization struct {
	// L is lower triangular with L·Lᵀ = Effective.
	L *matrix.Dense

	// Effective is the correlation actually imposed on samples.
	Effective *matrix.Dense

	// Repaired is true when the requested matrix was not positive definite.
	Repaired bool

	// MaxDeviation is max |requested − effective| over all entries.
	MaxDeviation float64
}

// TryFactor returns the Cholesky factor of the requested matrix without
// modifying it.
//
// Errors:
//   - ErrNotPositiveDefinite when a pivot is not strictly positive.
func (m *Matrix) TryFactor() (*matrix.Dense, error) {
	L, err := matrix.Cholesky(m.data)
	if err != nil {
		return nil, correlationErrorf(opTryFactor, err)
	}

	return L, nil
}

// Repair finds the nearest factorable correlation matrix by eigenvalue
// clamping and returns its Cholesky factor. The requested matrix is left
// untouched.
//
// Implementation:
//   - Stage 1: Jacobi eigen-decomposition A = V·diag(λ)·Vᵀ (computed once).
//   - Stage 2: λᵢ ← max(λᵢ, floor); B = V·diag(λ)·Vᵀ.
//   - Stage 3: B ← D^-½·B·D^-½ with D = diag(B), so diag(B) = 1 again.
//   - Stage 4: Cholesky(B). On ErrNotPositiveDefinite raise floor tenfold and
//     go back to Stage 2, at most Options.MaxRepairs more times.
//
// Errors:
//   - matrix.ErrEigenFailed if Jacobi does not converge.
//   - ErrRepairFailed when every attempt fails.
func (m *Matrix) Repair() (*matrix.Dense, error) {
	L, _, err := m.repair()

	return L, err
}

func (m *Matrix) repair() (*matrix.Dense, *matrix.Dense, error) {
	vals, vecs, err := matrix.Eigen(m.data, m.opts.EigenTol, m.opts.EigenMaxIter)
	if err != nil {
		return nil, nil, correlationErrorf(opRepair, err)
	}

	clamped := make([]float64, len(vals))
	floor := m.opts.EigenFloor
	for attempt := 0; attempt <= m.opts.MaxRepairs; attempt++ {
		for i, v := range vals {
			clamped[i] = math.Max(v, floor)
		}
		B, err := matrix.Reconstruct(clamped, vecs)
		if err != nil {
			return nil, nil, correlationErrorf(opRepair, err)
		}
		unitDiagonal(B)

		L, err := matrix.Cholesky(B)
		if err == nil {
			return L, B, nil
		}
		if !errors.Is(err, ErrNotPositiveDefinite) {
			return nil, nil, correlationErrorf(opRepair, err)
		}
		floor *= 10
	}

	return nil, nil, correlationErrorf(opRepair, fmt.Errorf("last floor %g: %w", floor/10, ErrRepairFailed))
}

// unitDiagonal rescales a symmetric matrix with positive diagonal in place
// to D^-½·B·D^-½.
func unitDiagonal(B *matrix.Dense) {
	n := B.Rows()
	scale := make([]float64, n)
	for i := 0; i < n; i++ {
		d, _ := B.At(i, i)
		scale[i] = 1 / math.Sqrt(d)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				_ = B.Set(i, i, 1)
				continue
			}
			v, _ := B.At(i, j)
			_ = B.Set(i, j, v*scale[i]*scale[j])
		}
	}
}

// Factor factors the requested matrix, repairing it only when the direct
// attempt reports ErrNotPositiveDefinite.
func (m *Matrix) Factor() (*Factorization, error) {
	L, err := m.TryFactor()
	repaired := false
	if err != nil {
		if !errors.Is(err, ErrNotPositiveDefinite) {
			return nil, correlationErrorf(opFactor, err)
		}
		if L, _, err = m.repair(); err != nil {
			return nil, correlationErrorf(opFactor, err)
		}
		repaired = true
	}

	Lt, err := matrix.Transpose(L)
	if err != nil {
		return nil, correlationErrorf(opFactor, err)
	}
	eff, err := matrix.Mul(L, Lt)
	if err != nil {
		return nil, correlationErrorf(opFactor, err)
	}

	return &Factorization{
		L:            L,
		Effective:    eff,
		Repaired:     repaired,
		MaxDeviation: maxAbsDiff(m.data, eff),
	}, nil
}

func maxAbsDiff(a, b *matrix.Dense) float64 {
	var worst float64
	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			x, _ := a.At(i, j)
			y, _ := b.At(i, j)
			worst = math.Max(worst, math.Abs(x-y))
		}
	}

	return worst
}
