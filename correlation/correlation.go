// SPDX-License-Identifier: MIT

package correlation

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvmc/matrix"
)

// Matrix is a named, symmetric, unit-diagonal correlation matrix.
type Matrix struct {
	names []string
	index map[string]int
	data  *matrix.Dense
	opts  Options
}

// New returns the identity correlation over names with DefaultOptions.
func New(names []string) (*Matrix, error) {
	return NewWithOptions(names, DefaultOptions())
}

// NewWithOptions is New with explicit repair settings.
func NewWithOptions(names []string, opts Options) (*Matrix, error) {
	if len(names) == 0 {
		return nil, correlationErrorf(opNew, ErrNoVariables)
	}
	index := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := index[n]; dup {
			return nil, correlationErrorf(opNew, fmt.Errorf("%q: %w", n, ErrDuplicateVariable))
		}
		index[n] = i
	}
	id, err := matrix.NewIdentity(len(names))
	if err != nil {
		return nil, correlationErrorf(opNew, err)
	}

	return &Matrix{
		names: append([]string(nil), names...),
		index: index,
		data:  id,
		opts:  opts.normalize(),
	}, nil
}

// Names returns the variable order.
func (m *Matrix) Names() []string { return append([]string(nil), m.names...) }

// Size returns the number of variables.
func (m *Matrix) Size() int { return len(m.names) }

// Dense returns a copy of the requested matrix.
func (m *Matrix) Dense() *matrix.Dense { return m.data.Clone().(*matrix.Dense) }

func (m *Matrix) pair(op, a, b string) (int, int, error) {
	i, ok := m.index[a]
	if !ok {
		return 0, 0, correlationErrorf(op, fmt.Errorf("%q: %w", a, ErrUnknownVariable))
	}
	j, ok := m.index[b]
	if !ok {
		return 0, 0, correlationErrorf(op, fmt.Errorf("%q: %w", b, ErrUnknownVariable))
	}

	return i, j, nil
}

// SetPairwise sets corr(a, b) = corr(b, a) = rho.
func (m *Matrix) SetPairwise(a, b string, rho float64) error {
	i, j, err := m.pair(opSetPairwise, a, b)
	if err != nil {
		return err
	}
	if i == j {
		return correlationErrorf(opSetPairwise, fmt.Errorf("%q: %w", a, ErrSelfCorrelation))
	}
	if math.IsNaN(rho) || rho < -1 || rho > 1 {
		return correlationErrorf(opSetPairwise, fmt.Errorf("%s/%s=%g: %w", a, b, rho, ErrOutOfRange))
	}
	_ = m.data.Set(i, j, rho)
	_ = m.data.Set(j, i, rho)

	return nil
}

// At returns corr(a, b).
func (m *Matrix) At(a, b string) (float64, error) {
	i, j, err := m.pair(opAt, a, b)
	if err != nil {
		return 0, err
	}

	return m.data.At(i, j)
}

// String renders the matrix with its variable names.
func (m *Matrix) String() string {
	return fmt.Sprintf("%v\n%s", m.names, m.data.String())
}
