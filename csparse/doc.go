// Package csparse provides the complex-valued dense and sparse matrix
// machinery underlying assembly, Schur reduction, the factorization
// cache and Y/S/Z conversion.
//
// Dense is the small n×n complex matrix returned by Component.Ymatrix
// and used for port-level conversions. CSR is the compressed-sparse-row
// global admittance matrix built from a component's COO stamp. Both use
// a row-major layout and a Doolittle LU algorithm generalized from real
// float64 to complex128 with partial pivoting for numerical stability
// (gonum's public decompositions are real-valued only — see DESIGN.md).
package csparse
