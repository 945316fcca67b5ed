// File: helpers.go
// Role: diagonal reference-impedance builders, the D/D^-1 sandwich, and
// the regularized-solve helper shared by every conversion in convert.go.
package convert

import (
	"fmt"
	"math"

	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
)

// admittanceDiag returns diag(1/z0[i]).
func admittanceDiag(z0 []complex128) *csparse.Dense {
	n := len(z0)
	d := csparse.NewDense(n, n)
	for i, z := range z0 {
		d.SetUnchecked(i, i, 1/z)
	}
	return d
}

// impedanceDiag returns diag(z0[i]).
func impedanceDiag(z0 []complex128) *csparse.Dense {
	n := len(z0)
	d := csparse.NewDense(n, n)
	for i, z := range z0 {
		d.SetUnchecked(i, i, z)
	}
	return d
}

// sqrtReZDiag returns D = diag(sqrt(Re(z0))) and D^-1, per §4.9.
func sqrtReZDiag(z0 []complex128) (d, dInv *csparse.Dense) {
	n := len(z0)
	d = csparse.NewDense(n, n)
	dInv = csparse.NewDense(n, n)
	for i, z := range z0 {
		s := math.Sqrt(real(z))
		d.SetUnchecked(i, i, complex(s, 0))
		if s != 0 {
			dInv.SetUnchecked(i, i, complex(1/s, 0))
		}
	}
	return d, dInv
}

// sandwich returns left · mid · right.
func sandwich(left, mid, right *csparse.Dense) (*csparse.Dense, error) {
	lm, err := left.MatMul(mid)
	if err != nil {
		return nil, err
	}
	return lm.MatMul(right)
}

// solveRegularized solves a·x = b. When a is Hermitian within
// HermitianTolerance, it prefers a Cholesky solve first (§4.9's "when
// the matrix is detected Hermitian, prefer Cholesky"); a non-positive
// pivot there just means Hermitian-but-not-positive-definite, so it
// falls through to the general path rather than failing outright.
//
// The general path attempts direct LU, retrying with diagonal
// regularization when the condition estimate exceeds
// DefaultConditionThreshold or the initial factorization fails
// outright (singular). If the regularized LU solve still fails, it
// falls back to a pseudoinverse of the regularized matrix via the
// normal equations A^H·A·x = A^H·b, warning once. Exhausting every
// fallback returns a *core.NumericError.
func solveRegularized(a, b *csparse.Dense) (*csparse.Dense, error) {
	if a.IsHermitian(HermitianTolerance) {
		if x, err := csparse.CholeskySolve(a, b); err == nil {
			return x, nil
		}
	}

	f, err := csparse.Factorize(a)
	if err == nil && f.ConditionEstimate() <= DefaultConditionThreshold {
		return f.Solve(b)
	}
	if err != nil {
		log.Warnf("convert: singular matrix encountered, regularizing diagonal by %.1e and retrying", DefaultRegularization)
	} else {
		log.Warnf("convert: condition estimate %.3e exceeds threshold %.1e, regularizing diagonal by %.1e", f.ConditionEstimate(), DefaultConditionThreshold, DefaultRegularization)
	}
	reg := a.Clone()
	reg.AddDiagonal(complex(DefaultRegularization, 0))
	x, regErr := csparse.SolveDense(reg, b)
	if regErr == nil {
		return x, nil
	}

	log.Warnf("convert: regularized LU also failed (%v), falling back to pseudoinverse", regErr)
	x, pinvErr := pseudoinverseSolve(reg, b)
	if pinvErr != nil {
		return nil, &core.NumericError{Err: pinvErr, Detail: "convert: regularized solve exhausted all fallbacks"}
	}
	return x, nil
}

// pseudoinverseSolve solves a·x = b in the least-squares sense via the
// normal equations A^H·A·x = A^H·b, an SVD-free pseudoinverse the
// corpus's dense-linear-algebra libraries have no complex128 path for
// (see DESIGN.md's csparse entry), used only once the regularized LU
// path itself has failed.
func pseudoinverseSolve(a, b *csparse.Dense) (*csparse.Dense, error) {
	aH := a.ConjugateTranspose()
	normalA, err := aH.MatMul(a)
	if err != nil {
		return nil, fmt.Errorf("pseudoinverseSolve: %w", err)
	}
	normalB, err := aH.MatMul(b)
	if err != nil {
		return nil, fmt.Errorf("pseudoinverseSolve: %w", err)
	}
	return csparse.SolveDense(normalA, normalB)
}

// solveRightRegularized solves x·sum = diff for x (x unknown on the
// left) by solving the transposed system sum^T·x^T = diff^T and
// transposing the result, reusing solveRegularized's fallback policy.
func solveRightRegularized(diff, sum *csparse.Dense) (*csparse.Dense, error) {
	xT, err := solveRegularized(sum.Transpose(), diff.Transpose())
	if err != nil {
		return nil, err
	}
	return xT.Transpose(), nil
}
