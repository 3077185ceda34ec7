// Package vector provides the one-dimensional numeric vector consumed by
// the matrix engine.
//
// A Vector owns a contiguous []float64. It supports indexed read/write with
// bounds checks, in-place add/subtract/scale, dot product and the L2 norm.
// Accumulations run left to right with no compensation, matching the
// reductions in package matrix.
//
// Vectors are not safe for concurrent mutation.
//
//	v, _ := vector.New(3, 1.0)      // [1 1 1]
//	w := vector.NewFrom([]float64{1, 2, 3})
//	dot, _ := v.Dot(w)              // 6
package vector
