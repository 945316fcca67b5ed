// File: cholesky.go
// Role: complex Cholesky decomposition for Hermitian positive-definite
// matrices, the preferred solve path convert reaches for once
// Dense.IsHermitian reports true (§4.9's "when the matrix is detected
// Hermitian, prefer Cholesky").
//
// A = L·L^H, L lower triangular with real positive diagonal. Half the
// work of LU with partial pivoting and no row swaps to track, but only
// valid when every leading principal minor is positive — a non-positive
// pivot means A is Hermitian but not positive-definite, and the caller
// falls back to general LU.
package csparse

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotPositiveDefinite indicates a Hermitian matrix failed to
// factorize because some leading principal minor was non-positive.
var ErrNotPositiveDefinite = errors.New("csparse: matrix is not positive definite")

// CholeskyFactorization holds the lower-triangular factor L of A = L·L^H.
type CholeskyFactorization struct {
	n int
	l *Dense
}

// CholeskyFactorize computes the Cholesky factor of the square Hermitian
// matrix a. Callers are expected to have already checked a.IsHermitian;
// CholeskyFactorize itself only enforces positive-definiteness.
func CholeskyFactorize(a *Dense) (*CholeskyFactorization, error) {
	if a.rows != a.cols {
		return nil, fmt.Errorf("CholeskyFactorize: %dx%d: %w", a.rows, a.cols, ErrNotSquare)
	}
	n := a.rows
	l := NewDense(n, n)
	for j := 0; j < n; j++ {
		sum := a.AtUnchecked(j, j)
		for k := 0; k < j; k++ {
			ljk := l.AtUnchecked(j, k)
			sum -= ljk * conjugate(ljk)
		}
		if real(sum) <= 0 {
			return nil, fmt.Errorf("CholeskyFactorize: non-positive pivot at column %d: %w", j, ErrNotPositiveDefinite)
		}
		diag := complex(math.Sqrt(real(sum)), 0)
		l.SetUnchecked(j, j, diag)
		for i := j + 1; i < n; i++ {
			s := a.AtUnchecked(i, j)
			for k := 0; k < j; k++ {
				s -= l.AtUnchecked(i, k) * conjugate(l.AtUnchecked(j, k))
			}
			l.SetUnchecked(i, j, s/diag)
		}
	}
	return &CholeskyFactorization{n: n, l: l}, nil
}

// Solve returns x such that A·x = rhs via forward/back substitution
// against L and L^H, reusing the cached factor.
func (f *CholeskyFactorization) Solve(rhs *Dense) (*Dense, error) {
	if rhs.rows != f.n {
		return nil, fmt.Errorf("Solve: rhs rows %d != n %d: %w", rhs.rows, f.n, ErrDimensionMismatch)
	}
	x := NewDense(f.n, rhs.cols)
	y := make([]complex128, f.n)

	for col := 0; col < rhs.cols; col++ {
		// Forward substitution: L·y = rhs.
		for i := 0; i < f.n; i++ {
			sum := rhs.AtUnchecked(i, col)
			for k := 0; k < i; k++ {
				sum -= f.l.AtUnchecked(i, k) * y[k]
			}
			y[i] = sum / f.l.AtUnchecked(i, i)
		}
		// Back substitution: L^H·x = y.
		for i := f.n - 1; i >= 0; i-- {
			sum := y[i]
			for k := i + 1; k < f.n; k++ {
				sum -= conjugate(f.l.AtUnchecked(k, i)) * x.AtUnchecked(k, col)
			}
			x.SetUnchecked(i, col, sum/f.l.AtUnchecked(i, i))
		}
	}
	return x, nil
}

// CholeskySolve factorizes a fresh Hermitian matrix and solves rhs in
// one call, mirroring SolveDense's one-off convenience shape.
func CholeskySolve(a, rhs *Dense) (*Dense, error) {
	f, err := CholeskyFactorize(a)
	if err != nil {
		return nil, err
	}
	return f.Solve(rhs)
}
