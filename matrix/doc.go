// Package matrix holds the data model of the solver benchmark: a row-major
// Dense matrix, plain []float64 vectors with the shared kernels the solvers
// need (Dot over a half-open range, Sub, Norm, Distance), and a seeded
// Generator of random dense systems.
//
// Dense is deliberately small: safe At/Set accessors for general callers and
// no-copy Row/RawData views for the elimination and relaxation kernels, which
// receive an exclusively owned Clone and mutate it in place.
//
//	gen := matrix.NewGenerator(matrix.WithSeed(42))
//	a, b, err := gen.System(500)
//	if err != nil { ... }
//	work := a.Clone() // hand this to a solver; a stays intact
//
// All errors are sentinels from errors.go, matched with errors.Is.
package matrix
