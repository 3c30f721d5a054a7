package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gsbench/matrix"
)

// ExampleNewDenseFrom builds a small system matrix and reads it back.
func ExampleNewDenseFrom() {
	a, err := matrix.NewDenseFrom([][]float64{{4, 1}, {2, 3}})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	v, _ := a.At(1, 0)
	fmt.Println(a.Rows(), a.Cols(), v)
	fmt.Print(a)
	// Output:
	// 2 2 2
	// [4, 1]
	// [2, 3]
}

// ExampleDistance measures the step between two iterates.
func ExampleDistance() {
	d, _ := matrix.Distance([]float64{3, 4}, []float64{0, 0})
	fmt.Println(d)
	// Output:
	// 5
}

// ExampleGenerator shows that a seed fixes the whole stream of systems.
func ExampleGenerator() {
	g1 := matrix.NewGenerator(matrix.WithSeed(42), matrix.WithDiagonalDominance())
	g2 := matrix.NewGenerator(matrix.WithSeed(42), matrix.WithDiagonalDominance())

	a1, b1, _ := g1.System(3)
	a2, b2, _ := g2.System(3)
	fmt.Println(a1.String() == a2.String(), fmt.Sprint(b1) == fmt.Sprint(b2))
	// Output:
	// true true
}
