// Package matrix is a dense, row-major float64 matrix engine.
//
// The matrix package provides:
//
//   - Dense storage with bounds-checked At/Set, row/column extraction and
//     inclusive sub-window copies (Partial).
//   - Elementwise and product kernels: Scale, Divide, Add/Subtract (in place),
//     Sum/Difference/Multiply/ElementProduct (pure), matrix×vector products
//     from either side, sums, Trace and Transpose.
//   - Determinant (forward elimination, no pivoting), in-place Inverse
//     (Gauss-Jordan with full pivoting) and Cholesky.
//   - Characteristics: positive eigenpairs of a symmetric matrix by cyclic
//     Jacobi rotation, sorted ascending.
//   - Copy adapters to and from gonum.org/v1/gonum/mat.
//
// Shape and index violations are errors, checked before anything is written.
// Numerical degeneracy is not: a singular Inverse or an indefinite Cholesky
// returns NaN/±Inf values, and callers test for them with math.IsNaN and
// math.IsInf. Determinant does not pivot, so a zero leading pivot reports 0.
//
// A Dense is not safe for concurrent mutation. Serialize writers or Clone.
//
// See example_test.go and examples/ for usage patterns.
package matrix
