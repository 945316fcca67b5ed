// Package assemble implements the Assembler and Reducer (§4.6): given a
// pattern.StampPattern, a core.CircuitModel, and a numeric.Context, it
// stamps every component's Y submatrix into the global COO template,
// builds the CSR, drops the ground row/column, Schur-reduces to the
// external ports via a cache.Cache-backed solve, and converts the
// result to S parameters via package convert.
package assemble
