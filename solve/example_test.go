package solve_test

import (
	"fmt"

	"github.com/katalvlaran/gsbench/matrix"
	"github.com/katalvlaran/gsbench/solve"
)

// ExampleGauss solves a 2×2 system directly. The call consumes its inputs,
// so pass clones when the originals are still needed.
func ExampleGauss() {
	a, _ := matrix.NewDenseFrom([][]float64{{4, 1}, {2, 3}})
	b := []float64{1, 2}

	res, err := solve.Gauss(a.Clone(), matrix.CloneVec(b))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("x = [%.4f %.4f]\n", res.X[0], res.X[1])
	// Output:
	// x = [0.1000 0.6000]
}

// ExampleSeidel iterates the same system to the default tolerance.
func ExampleSeidel() {
	a, _ := matrix.NewDenseFrom([][]float64{{4, 1}, {2, 3}})

	res, err := solve.Seidel(a, []float64{1, 2})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status)
	fmt.Printf("x = [%.4f %.4f]\n", res.X[0], res.X[1])
	// Output:
	// converged
	// x = [0.1000 0.6000]
}
