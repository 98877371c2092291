// SPDX-License-Identifier: MIT

package distribution_test

import (
	"fmt"

	"github.com/katalvlaran/lvmc/distribution"
)

// ExampleDistribution_Quantile evaluates the inverse CDF of a uniform law.
//
// Scenario:
//
//	Lead time is equally likely anywhere between 10 and 20 days.
//	The 25th, 50th and 90th percentiles are read directly.
func ExampleDistribution_Quantile() {
	d := distribution.NewUniform("lead_time", 10, 20)
	qs, err := d.Quantiles([]float64{0.25, 0.5, 0.9})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("%.1f %.1f %.1f\n", qs[0], qs[1], qs[2])
	// Output: 12.5 15.0 19.0
}

// ExampleNew declares a variable from a family tag and a parameter map,
// the way scenario files do.
func ExampleNew() {
	fam, err := distribution.ParseFamily("pert")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	d, err := distribution.New("duration", fam, distribution.Params{"low": 3, "mode": 5, "high": 12})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(d)
	fmt.Println(d.Validate() == nil, d.HasInverseCDF())
	// Output:
	// duration~pert(low=3, mode=5, high=12)
	// true false
}
