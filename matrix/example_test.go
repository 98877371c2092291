// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvmc/matrix"
)

// ExampleCholesky factors a small symmetric positive-definite matrix.
func ExampleCholesky() {
	C, _ := matrix.NewFromRows([][]float64{
		{1.0, 0.5},
		{0.5, 1.25},
	})
	L, _ := matrix.Cholesky(C)
	fmt.Print(L)

	// Output:
	// [1, 0]
	// [0.5, 1]
}
