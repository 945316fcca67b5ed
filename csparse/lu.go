// File: lu.go
// Role: complex LU decomposition with partial pivoting and the Solve
// entry point used by assemble's Schur reduction, cache's reused
// solvers, and convert's Y/S/Z inversions.
//
// A Doolittle LU algorithm generalized from float64 to complex128.
// Partial pivoting is added because RF admittance blocks are not
// guaranteed diagonally dominant; plain Doolittle would fail on a zero
// pivot that a row swap would otherwise avoid.
//
// Complexity: O(n^3) time, O(n^2) memory for the factorization;
// O(n^2) per right-hand-side column for Solve.
package csparse

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
)

// ErrSingular indicates that no row swap could produce a non-zero pivot.
var ErrSingular = errors.New("csparse: matrix is singular")

// ErrNotSquare indicates a non-square matrix was passed to LU/Solve.
var ErrNotSquare = errors.New("csparse: matrix is not square")

// LUFactorization holds the decomposed PA = LU factors plus the
// permutation applied by partial pivoting. It implements Solver.
type LUFactorization struct {
	n    int
	lu   *Dense // combined L (unit diagonal implied) and U in one buffer
	perm []int  // perm[i] = original row now at position i
}

// Solver is the minimal contract a cached factorization exposes: solve a
// dense right-hand side without re-factorizing.
type Solver interface {
	Solve(rhs *Dense) (*Dense, error)
}

// Factorize computes an LU decomposition of the square matrix a with
// partial pivoting. Returns ErrNotSquare or ErrSingular.
func Factorize(a *Dense) (*LUFactorization, error) {
	if a.rows != a.cols {
		return nil, fmt.Errorf("Factorize: %dx%d: %w", a.rows, a.cols, ErrNotSquare)
	}
	n := a.rows
	lu := a.Clone()
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	for k := 0; k < n; k++ {
		// Stage: partial pivot — pick the largest-magnitude entry in column k at or below row k.
		pivotRow, pivotMag := k, cmplx.Abs(lu.AtUnchecked(k, k))
		for i := k + 1; i < n; i++ {
			if mag := cmplx.Abs(lu.AtUnchecked(i, k)); mag > pivotMag {
				pivotRow, pivotMag = i, mag
			}
		}
		if pivotMag == 0 {
			return nil, fmt.Errorf("Factorize: zero pivot at column %d: %w", k, ErrSingular)
		}
		if pivotRow != k {
			swapRows(lu, k, pivotRow)
			perm[k], perm[pivotRow] = perm[pivotRow], perm[k]
		}

		// Stage: eliminate below the pivot, storing multipliers in the
		// lower triangle (Doolittle layout: L implicit unit diagonal).
		pivot := lu.AtUnchecked(k, k)
		for i := k + 1; i < n; i++ {
			factor := lu.AtUnchecked(i, k) / pivot
			lu.SetUnchecked(i, k, factor)
			for j := k + 1; j < n; j++ {
				lu.SetUnchecked(i, j, lu.AtUnchecked(i, j)-factor*lu.AtUnchecked(k, j))
			}
		}
	}

	return &LUFactorization{n: n, lu: lu, perm: perm}, nil
}

func swapRows(m *Dense, a, b int) {
	if a == b {
		return
	}
	for j := 0; j < m.cols; j++ {
		m.data[a*m.cols+j], m.data[b*m.cols+j] = m.data[b*m.cols+j], m.data[a*m.cols+j]
	}
}

// Solve returns x such that A·x = rhs, reusing the cached factors.
// rhs.Rows() must equal the factored dimension; rhs may carry multiple
// columns (a dense right-hand-side block), matching the Y_ii·X = Y_ie
// solve used by Schur reduction.
func (f *LUFactorization) Solve(rhs *Dense) (*Dense, error) {
	if rhs.rows != f.n {
		return nil, fmt.Errorf("Solve: rhs rows %d != n %d: %w", rhs.rows, f.n, ErrDimensionMismatch)
	}
	x := NewDense(f.n, rhs.cols)
	y := make([]complex128, f.n)

	for col := 0; col < rhs.cols; col++ {
		// Apply permutation to this column of rhs.
		for i := 0; i < f.n; i++ {
			y[i], _ = rhs.At(f.perm[i], col)
		}
		// Forward substitution: L·z = Py (L unit lower triangular).
		for i := 0; i < f.n; i++ {
			sum := y[i]
			for k := 0; k < i; k++ {
				sum -= f.lu.AtUnchecked(i, k) * y[k]
			}
			y[i] = sum
		}
		// Back substitution: U·x = z.
		for i := f.n - 1; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < f.n; k++ {
				sum -= f.lu.AtUnchecked(i, k) * x.AtUnchecked(k, col)
			}
			diag := f.lu.AtUnchecked(i, i)
			x.SetUnchecked(i, col, sum/diag)
		}
	}
	return x, nil
}

// ConditionEstimate returns a cheap order-of-magnitude condition number
// estimate: the ratio of the largest to smallest magnitude diagonal
// pivot of U. It is not a tight bound, only enough to decide whether
// convert should regularize (§4.9).
func (f *LUFactorization) ConditionEstimate() float64 {
	maxP, minP := 0.0, cmplx.Abs(f.lu.AtUnchecked(0, 0))
	for i := 0; i < f.n; i++ {
		mag := cmplx.Abs(f.lu.AtUnchecked(i, i))
		if mag > maxP {
			maxP = mag
		}
		if mag < minP {
			minP = mag
		}
	}
	if minP == 0 {
		return math.Inf(1)
		// unreachable in practice: Factorize already rejects zero pivots.
	}
	return maxP / minP
}

// SolveDense is a convenience wrapper factorizing a fresh matrix and
// solving rhs in one call, for call sites that have no reason to cache
// the factorization (e.g. a one-off conversion in package convert).
func SolveDense(a, rhs *Dense) (*Dense, error) {
	f, err := Factorize(a)
	if err != nil {
		return nil, err
	}
	return f.Solve(rhs)
}
