// Package linalg is a small dense linear-algebra toolkit: a float64 vector
// and a row-major matrix engine with exact, reproducible numerics.
//
// What you get:
//
//	• Storage: bounds-checked Dense matrices, copies of rows, columns and windows
//	• Arithmetic: scale/divide, add/subtract (in place or pure), Hadamard product
//	• Products: matrix×matrix, matrix×vector from either side, sums, trace, transpose
//	• Solvers: determinant, in-place Gauss-Jordan inverse, Cholesky
//	• Spectra: cyclic Jacobi eigenpairs of symmetric matrices
//	• Interop: copy adapters to and from gonum/mat
//
// Contracts worth knowing:
//
//   - Shape and index problems are errors (errors.Is against matrix.Err*),
//     reported before any write.
//   - Singular or indefinite input is not an error: results carry NaN/±Inf.
//   - Characteristics keeps only positive eigenvalues.
//
// Layout:
//
//	vector/   — Vector: indexed access, add/subtract, dot, L2 norm
//	matrix/   — Dense engine, options, validators, gonum bridges
//	examples/ — spectral analysis of a graph adjacency matrix (+ PNG/HTML charts)
//
// Quick example:
//
//	m, _ := matrix.NewDenseFrom([][]float64{{2, 1}, {1, 2}})
//	pairs, _ := m.Characteristics() // λ = 1, 3
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
