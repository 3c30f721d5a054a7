// SPDX-License-Identifier: MIT

// Command gsbench benchmarks Gaussian elimination against Gauss-Seidel on
// random dense systems and prints the mean time per size.
//
// With no flags it runs the baseline: sizes 100…2000, 5 trials each.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
