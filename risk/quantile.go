// SPDX-License-Identifier: MIT

package risk

import (
	"math"
	"sort"
)

// sorted returns an ascending copy of xs.
func sorted(xs []float64) []float64 {
	out := append([]float64(nil), xs...)
	sort.Float64s(out)

	return out
}

// quantileSorted interpolates linearly between order statistics of an
// ascending slice: h = (n−1)·p, q = x[⌊h⌋] + (h−⌊h⌋)·(x[⌊h⌋+1] − x[⌊h⌋]).
func quantileSorted(p float64, xs []float64) float64 {
	n := len(xs)
	if n == 0 {
		return math.NaN()
	}
	h := float64(n-1) * p
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return xs[n-1]
	}
	if lo < 0 {
		return xs[0]
	}

	return xs[lo] + (h-float64(lo))*(xs[lo+1]-xs[lo])
}

// Quantile returns the p-quantile of xs with linear interpolation between
// order statistics. xs is not modified.
func Quantile(p float64, xs []float64) float64 {
	return quantileSorted(p, sorted(xs))
}

// ranks returns 1-based ranks of xs; tied values share their average rank.
func ranks(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i + 1
		for j < n && xs[idx[j]] == xs[idx[i]] {
			j++
		}
		avg := float64(i+j+1) / 2 // mean of ranks i+1 .. j
		for k := i; k < j; k++ {
			out[idx[k]] = avg
		}
		i = j
	}

	return out
}
