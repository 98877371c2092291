// SPDX-License-Identifier: MIT

package sampler_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmc/correlation"
	"github.com/katalvlaran/lvmc/distribution"
	"github.com/katalvlaran/lvmc/sampler"
)

func pairCorr(t *testing.T, names []string, rho float64) *correlation.Matrix {
	t.Helper()
	c, err := correlation.New(names)
	require.NoError(t, err)
	require.NoError(t, c.SetPairwise(names[0], names[1], rho))

	return c
}

func column(t *testing.T, s *sampler.Samples, name string) []float64 {
	t.Helper()
	xs, err := s.Column(name)
	require.NoError(t, err)

	return xs
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()

	rng := sampler.NewRNG(1)
	x := distribution.NewNormal("x", 0, 1)
	y := distribution.NewNormal("y", 0, 1)

	_, err := sampler.New(nil, nil, rng)
	require.ErrorIs(t, err, sampler.ErrNoVariables)
	_, err = sampler.New([]*distribution.Distribution{x}, nil, nil)
	require.ErrorIs(t, err, sampler.ErrNilRNG)
	_, err = sampler.New([]*distribution.Distribution{x, nil}, nil, rng)
	require.ErrorIs(t, err, sampler.ErrNilVariable)
	_, err = sampler.New([]*distribution.Distribution{x, x}, nil, rng)
	require.ErrorIs(t, err, sampler.ErrDuplicateVariable)

	swapped := pairCorr(t, []string{"y", "x"}, 0.5)
	_, err = sampler.New([]*distribution.Distribution{x, y}, swapped, rng)
	require.ErrorIs(t, err, sampler.ErrCorrelationMismatch)

	short, err := correlation.New([]string{"x"})
	require.NoError(t, err)
	_, err = sampler.New([]*distribution.Distribution{x, y}, short, rng)
	require.ErrorIs(t, err, sampler.ErrCorrelationMismatch)

	s, err := sampler.New([]*distribution.Distribution{x}, nil, rng)
	require.NoError(t, err)
	_, err = s.Sample(0)
	require.ErrorIs(t, err, sampler.ErrInvalidCount)
}

func TestSample_Independent(t *testing.T) {
	t.Parallel()

	vars := []*distribution.Distribution{
		distribution.NewUniform("u", 2, 3),
		distribution.NewTriangular("t", 0, 1, 4),
	}
	s, err := sampler.New(vars, nil, sampler.NewRNG(11))
	require.NoError(t, err)
	require.False(t, s.Correlated())

	out, err := s.Sample(2000)
	require.NoError(t, err)
	require.Equal(t, []string{"u", "t"}, out.Names)
	require.Equal(t, 2000, out.Len())
	for _, x := range column(t, out, "u") {
		require.True(t, x >= 2 && x <= 3)
	}
	require.Nil(t, s.Factorization())

	_, err = out.Column("nope")
	require.ErrorIs(t, err, sampler.ErrUnknownColumn)
}

func TestSample_CorrelatedNormals(t *testing.T) {
	t.Parallel()

	vars := []*distribution.Distribution{
		distribution.NewNormal("a", 10, 2),
		distribution.NewNormal("b", -5, 0.5),
	}
	s, err := sampler.New(vars, pairCorr(t, []string{"a", "b"}, 0.7), sampler.NewRNG(42))
	require.NoError(t, err)

	out, err := s.Sample(50_000)
	require.NoError(t, err)
	a, b := column(t, out, "a"), column(t, out, "b")
	require.InDelta(t, 0.7, stat.Correlation(a, b, nil), 0.05)
	require.InDelta(t, 10.0, stat.Mean(a, nil), 0.05)
	require.InDelta(t, 2.0, stat.StdDev(a, nil), 0.05)

	f := s.Factorization()
	require.NotNil(t, f)
	require.False(t, f.Repaired)

	emp, err := sampler.EmpiricalCorrelation(out)
	require.NoError(t, err)
	v, err := emp.At(0, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.7, v, 0.05)
}

func TestSample_CorrelatedBoundedAndFallback(t *testing.T) {
	t.Parallel()

	vars := []*distribution.Distribution{
		distribution.NewTriangular("t", 1, 2, 6),
		distribution.NewUniform("u", 0, 1),
		distribution.NewLogNormal("ln", 3, 1),
		distribution.NewPERT("p", 0, 1, 5, distribution.DefaultPERTLambda),
	}
	c, err := correlation.New([]string{"t", "u", "ln", "p"})
	require.NoError(t, err)
	require.NoError(t, c.SetPairwise("t", "u", -0.6))
	require.NoError(t, c.SetPairwise("ln", "p", 0.8))

	s, err := sampler.New(vars, c, sampler.NewRNG(3))
	require.NoError(t, err)
	out, err := s.Sample(20_000)
	require.NoError(t, err)

	for _, x := range column(t, out, "t") {
		require.True(t, x >= 1 && x <= 6)
	}
	for _, x := range column(t, out, "ln") {
		require.Greater(t, x, 0.0)
	}
	for _, x := range column(t, out, "p") {
		require.True(t, x >= 0 && x <= 5)
	}
	// Rank-based mapping keeps the sign and most of the strength.
	require.Less(t, stat.Correlation(column(t, out, "t"), column(t, out, "u"), nil), -0.4)
	// Fallback columns are drawn independently.
	require.InDelta(t, 0.0, stat.Correlation(column(t, out, "ln"), column(t, out, "p"), nil), 0.05)
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	draw := func(seed uint64) []float64 {
		vars := []*distribution.Distribution{
			distribution.NewNormal("a", 0, 1),
			distribution.NewLogNormal("b", 2, 1),
		}
		s, err := sampler.New(vars, pairCorr(t, []string{"a", "b"}, 0.3), sampler.NewRNG(seed))
		require.NoError(t, err)
		out, err := s.Sample(500)
		require.NoError(t, err)

		return append(column(t, out, "a"), column(t, out, "b")...)
	}
	require.Equal(t, draw(9), draw(9))
	require.NotEqual(t, draw(9), draw(10))
	// seed 0 maps to the default seed
	require.Equal(t, draw(0), draw(sampler.DefaultSeed))
}

func TestSample_InvalidDeclaration(t *testing.T) {
	t.Parallel()

	bad, err := distribution.New("x", distribution.Normal, distribution.Params{"mean": 1})
	require.NoError(t, err)
	s, err := sampler.New([]*distribution.Distribution{bad}, nil, sampler.NewRNG(1))
	require.NoError(t, err)
	_, err = s.Sample(10)
	require.ErrorIs(t, err, distribution.ErrMissingParameter)
}
