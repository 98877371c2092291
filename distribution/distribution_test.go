// SPDX-License-Identifier: MIT

package distribution_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/lvmc/distribution"
)

const seedDet uint64 = 20240611

// DistributionSuite exercises sampling for every supported family.
type DistributionSuite struct {
	suite.Suite
	src rand.Source
}

func (s *DistributionSuite) SetupTest() {
	s.src = rand.NewSource(seedDet)
}

// TestCountsAndBounds verifies n draws come back and bounded laws stay inside [low, high].
func (s *DistributionSuite) TestCountsAndBounds() {
	cases := []struct {
		d         *distribution.Distribution
		low, high float64
		bounded   bool
	}{
		{d: distribution.NewNormal("n", 10, 2)},
		{d: distribution.NewLogNormal("ln", 5, 1)},
		{d: distribution.NewTriangular("t", 1, 2, 5), low: 1, high: 5, bounded: true},
		{d: distribution.NewUniform("u", -3, 3), low: -3, high: 3, bounded: true},
		{d: distribution.NewPERT("p", 10, 12, 30, distribution.DefaultPERTLambda), low: 10, high: 30, bounded: true},
		{d: distribution.NewPERT("p-lo", 0, 0, 1, distribution.DefaultPERTLambda), low: 0, high: 1, bounded: true},
		{d: distribution.NewTriangular("t-hi", 0, 1, 1), low: 0, high: 1, bounded: true},
	}
	const n = 5000
	for _, tc := range cases {
		xs, err := tc.d.Sample(n, s.src)
		require.NoError(s.T(), err, tc.d.String())
		require.Len(s.T(), xs, n)
		if !tc.bounded {
			continue
		}
		for _, x := range xs {
			require.GreaterOrEqual(s.T(), x, tc.low, tc.d.String())
			require.LessOrEqual(s.T(), x, tc.high, tc.d.String())
		}
	}
}

// TestLogNormalRoundTrip checks the arithmetic mean/std parameterisation.
func (s *DistributionSuite) TestLogNormalRoundTrip() {
	xs, err := distribution.NewLogNormal("price", 100, 20).Sample(100_000, s.src)
	require.NoError(s.T(), err)
	mean, std := stat.MeanStdDev(xs, nil)
	require.InEpsilon(s.T(), 100.0, mean, 0.02)
	require.InEpsilon(s.T(), 20.0, std, 0.02)
	for _, x := range xs {
		require.Greater(s.T(), x, 0.0)
	}
}

// TestPERTSymmetric checks the mode == mean fallback shape.
func (s *DistributionSuite) TestPERTSymmetric() {
	xs, err := distribution.NewPERT("dur", 0, 50, 100, distribution.DefaultPERTLambda).Sample(50_000, s.src)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 50.0, stat.Mean(xs, nil), 0.5)
}

// TestPERTSkewedMean checks the general α/β branch against the PERT mean formula.
func (s *DistributionSuite) TestPERTSkewedMean() {
	// mean = (10 + 4·12 + 30)/6 = 14.666…
	xs, err := distribution.NewPERT("cost", 10, 12, 30, 4).Sample(100_000, s.src)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 88.0/6.0, stat.Mean(xs, nil), 0.1)
}

// TestTriangularMean checks (low+mode+high)/3.
func (s *DistributionSuite) TestTriangularMean() {
	xs, err := distribution.NewTriangular("margin", 0.15, 0.20, 0.28).Sample(100_000, s.src)
	require.NoError(s.T(), err)
	require.InDelta(s.T(), 0.63/3, stat.Mean(xs, nil), 0.001)
}

func TestDistributionSuite(t *testing.T) {
	suite.Run(t, new(DistributionSuite))
}

func TestSample_Deterministic(t *testing.T) {
	t.Parallel()

	d := distribution.NewNormal("x", 0, 1)
	a, err := d.Sample(100, rand.NewSource(7))
	require.NoError(t, err)
	b, err := d.Sample(100, rand.NewSource(7))
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestSample_Degenerate(t *testing.T) {
	t.Parallel()

	src := rand.NewSource(1)
	for _, d := range []*distribution.Distribution{
		distribution.NewTriangular("t", 3, 3, 3),
		distribution.NewPERT("p", 3, 3, 3, 4),
		distribution.NewUniform("u", 3, 3),
		distribution.NewNormal("n", 3, 0),
	} {
		xs, err := d.Sample(10, src)
		require.NoError(t, err, d.String())
		for _, x := range xs {
			require.Equal(t, 3.0, x, d.String())
		}
	}
}

// TestSample_PERTRoundedMode covers symmetric PERTs whose mode equals the
// PERT mean only up to rounding; they must keep the Beta(3,3) shape.
func TestSample_PERTRoundedMode(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct{ low, mode, high float64 }{
		{0.15, 0.2, 0.25},
		{0.1, 0.2, 0.3},
		{0, 50, 100},
	} {
		d := distribution.NewPERT("x", tc.low, tc.mode, tc.high, distribution.DefaultPERTLambda)
		var xs []float64
		require.NotPanics(t, func() {
			var err error
			xs, err = d.Sample(100_000, rand.NewSource(7))
			require.NoError(t, err, d.String())
		}, d.String())

		span := tc.high - tc.low
		mean, std := stat.MeanStdDev(xs, nil)
		// Beta(3,3) has variance 1/28.
		require.InDelta(t, tc.mode, mean, 0.01*span, d.String())
		require.InEpsilon(t, math.Sqrt(1.0/28)*span, std, 0.03, d.String())
	}
}

func TestErrors(t *testing.T) {
	t.Parallel()

	src := rand.NewSource(1)

	_, err := distribution.New("x", "weibull", distribution.Params{})
	require.ErrorIs(t, err, distribution.ErrUnsupportedDistribution)
	_, err = distribution.ParseFamily("cauchy")
	require.ErrorIs(t, err, distribution.ErrUnsupportedDistribution)
	_, err = distribution.New("", distribution.Normal, nil)
	require.ErrorIs(t, err, distribution.ErrEmptyName)

	// Missing keys surface at sample time, not at construction.
	d, err := distribution.New("x", distribution.Triangular, distribution.Params{"low": 0, "high": 1})
	require.NoError(t, err)
	_, err = d.Sample(10, src)
	require.ErrorIs(t, err, distribution.ErrMissingParameter)
	require.ErrorIs(t, d.Validate(), distribution.ErrMissingParameter)

	_, err = distribution.NewNormal("x", 0, -1).Sample(1, src)
	require.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewLogNormal("x", 0, 1).Sample(1, src)
	require.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewTriangular("x", 0, 2, 1).Sample(1, src)
	require.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewUniform("x", 1, 0).Sample(1, src)
	require.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewPERT("x", 0, 1, 2, 0).Sample(1, src)
	require.ErrorIs(t, err, distribution.ErrInvalidParameter)
	_, err = distribution.NewNormal("x", math.NaN(), 1).Sample(1, src)
	require.ErrorIs(t, err, distribution.ErrInvalidParameter)

	_, err = distribution.NewNormal("x", 0, 1).Sample(0, src)
	require.ErrorIs(t, err, distribution.ErrInvalidCount)
	_, err = distribution.NewNormal("x", 0, 1).Sample(1, nil)
	require.ErrorIs(t, err, distribution.ErrNilSource)
}

func TestQuantile(t *testing.T) {
	t.Parallel()

	q, err := distribution.NewNormal("n", 5, 2).Quantile(0.5)
	require.NoError(t, err)
	require.InDelta(t, 5.0, q, 1e-12)

	q, err = distribution.NewNormal("n", 0, 1).Quantile(0.975)
	require.NoError(t, err)
	require.InDelta(t, 1.959963984540054, q, 1e-9)

	q, err = distribution.NewUniform("u", 10, 20).Quantile(0.25)
	require.NoError(t, err)
	require.InDelta(t, 12.5, q, 1e-12)

	// Left branch of the triangular inverse: low + sqrt(p·(high-low)·(mode-low)).
	q, err = distribution.NewTriangular("t", 0, 0.5, 1).Quantile(0.125)
	require.NoError(t, err)
	require.InDelta(t, 0.25, q, 1e-12)

	for _, d := range []*distribution.Distribution{
		distribution.NewLogNormal("ln", 1, 1),
		distribution.NewPERT("p", 0, 1, 2, 4),
	} {
		require.False(t, d.HasInverseCDF())
		_, err = d.Quantile(0.5)
		require.ErrorIs(t, err, distribution.ErrNoInverseCDF)
	}

	_, err = distribution.NewNormal("n", 0, 1).Quantile(1.5)
	require.ErrorIs(t, err, distribution.ErrInvalidProbability)
}

func TestParamsAreCopied(t *testing.T) {
	t.Parallel()

	in := distribution.Params{"low": 0, "high": 1}
	d, err := distribution.New("u", distribution.Uniform, in)
	require.NoError(t, err)
	in["high"] = 100
	require.Equal(t, 1.0, d.Params()["high"])

	out := d.Params()
	out["high"] = 50
	require.Equal(t, 1.0, d.Params()["high"])
}

func TestFamilies(t *testing.T) {
	t.Parallel()

	require.Equal(t, []distribution.Family{
		distribution.LogNormal, distribution.Normal, distribution.PERT,
		distribution.Triangular, distribution.Uniform,
	}, distribution.Families())
}
