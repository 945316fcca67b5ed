// File: convert.go
// Role: Y/S/Z conversions with per-port (possibly complex) reference
// impedances (§4.9).
//
// Every inversion is a linear solve (csparse.Factorize/Solve), never an
// explicit matrix inverse. When the condition-number estimate of the
// matrix being inverted exceeds RegularizationThreshold, a small
// reg·I term is added to the diagonal and the solve is retried — the
// spec's "adaptive regularization only when the estimate exceeds a
// threshold" resolution of the corresponding Open Question (§9).
package convert

import (
	"fmt"

	"github.com/Gjild/rfsim/csparse"
)

// DefaultRegularization is added to the diagonal of an ill-conditioned
// matrix before retrying a solve (§4.9's reg = 1e-12 default).
const DefaultRegularization = 1e-12

// DefaultConditionThreshold is the ConditionEstimate above which
// convert regularizes before solving (chosen to flag matrices several
// orders of magnitude from the machine epsilon of a typical RF Y/S
// range; not pinned to a specific numeric derivation).
const DefaultConditionThreshold = 1e10

// HermitianTolerance bounds the element-wise deviation from A = A^H
// that solveRegularized still treats as Hermitian, preferring a
// Cholesky solve over general LU (§4.9).
const HermitianTolerance = 1e-9

// YtoS converts Y to S given the per-port reference impedance vector z0,
// following S = D·((Y0-Y)·(Y0+Y)^-1)·D^-1, computed as the solve
// X·(Y0+Y) = (Y0-Y).
func YtoS(y *csparse.Dense, z0 []complex128) (*csparse.Dense, error) {
	if err := checkSquareMatchesPorts(y, z0); err != nil {
		return nil, fmt.Errorf("YtoS: %w", err)
	}
	y0 := admittanceDiag(z0)

	sum, err := y0.Add(y)
	if err != nil {
		return nil, fmt.Errorf("YtoS: %w", err)
	}
	diff, err := y0.Sub(y)
	if err != nil {
		return nil, fmt.Errorf("YtoS: %w", err)
	}

	x, err := solveRightRegularized(diff, sum)
	if err != nil {
		return nil, fmt.Errorf("YtoS: %w", err)
	}

	d, dInv := sqrtReZDiag(z0)
	s, err := sandwich(d, x, dInv)
	if err != nil {
		return nil, fmt.Errorf("YtoS: %w", err)
	}
	return s, nil
}

// StoY converts S to Y: Y = (I + S')^-1·(I - S')·Y0, S' = D^-1·S·D.
func StoY(s *csparse.Dense, z0 []complex128) (*csparse.Dense, error) {
	if err := checkSquareMatchesPorts(s, z0); err != nil {
		return nil, fmt.Errorf("StoY: %w", err)
	}
	d, dInv := sqrtReZDiag(z0)
	sPrime, err := sandwich(dInv, s, d)
	if err != nil {
		return nil, fmt.Errorf("StoY: %w", err)
	}

	n := len(z0)
	ident := csparse.Identity(n)
	iMinus, err := ident.Sub(sPrime)
	if err != nil {
		return nil, fmt.Errorf("StoY: %w", err)
	}
	iPlus, err := ident.Add(sPrime)
	if err != nil {
		return nil, fmt.Errorf("StoY: %w", err)
	}

	x, err := solveRegularized(iPlus, iMinus) // X = (I+S')^-1 · (I-S')
	if err != nil {
		return nil, fmt.Errorf("StoY: %w", err)
	}
	y0 := admittanceDiag(z0)
	y, err := x.MatMul(y0)
	if err != nil {
		return nil, fmt.Errorf("StoY: %w", err)
	}
	return y, nil
}

// ZtoS converts Z to S given per-port reference z0: S = D^-1·(Z-Z0)·(Z+Z0)^-1·D,
// the dual of YtoS with the roles of Y0 and Z swapped.
func ZtoS(z *csparse.Dense, z0 []complex128) (*csparse.Dense, error) {
	if err := checkSquareMatchesPorts(z, z0); err != nil {
		return nil, fmt.Errorf("ZtoS: %w", err)
	}
	z0Diag := impedanceDiag(z0)
	diff, err := z.Sub(z0Diag)
	if err != nil {
		return nil, fmt.Errorf("ZtoS: %w", err)
	}
	sum, err := z.Add(z0Diag)
	if err != nil {
		return nil, fmt.Errorf("ZtoS: %w", err)
	}
	// Solve X·sum = diff  <=>  sum^T · X^T = diff^T; work with transposes
	// since csparse.Solve only solves A·X = B on the left.
	x, err := solveRightRegularized(diff, sum)
	if err != nil {
		return nil, fmt.Errorf("ZtoS: %w", err)
	}
	d, dInv := sqrtReZDiag(z0)
	s, err := sandwich(dInv, x, d)
	if err != nil {
		return nil, fmt.Errorf("ZtoS: %w", err)
	}
	return s, nil
}

// StoZ converts S to Z: Z = D·(I - S')^-1·(I + S')·D, S' = D^-1·S·D — the
// algebraic dual of StoY with Y0 replaced by Z0.
func StoZ(s *csparse.Dense, z0 []complex128) (*csparse.Dense, error) {
	if err := checkSquareMatchesPorts(s, z0); err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	d, dInv := sqrtReZDiag(z0)
	sPrime, err := sandwich(dInv, s, d)
	if err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	n := len(z0)
	ident := csparse.Identity(n)
	iMinus, err := ident.Sub(sPrime)
	if err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	iPlus, err := ident.Add(sPrime)
	if err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	x, err := solveRegularized(iMinus, iPlus) // X = (I-S')^-1(I+S')
	if err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	z, err := d.MatMul(x)
	if err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	z, err = z.MatMul(d)
	if err != nil {
		return nil, fmt.Errorf("StoZ: %w", err)
	}
	return z, nil
}

func checkSquareMatchesPorts(m *csparse.Dense, z0 []complex128) error {
	if m.Rows() != m.Cols() {
		return fmt.Errorf("non-square %dx%d: %w", m.Rows(), m.Cols(), csparse.ErrDimensionMismatch)
	}
	if m.Rows() != len(z0) {
		return fmt.Errorf("matrix dim %d != len(z0) %d: %w", m.Rows(), len(z0), csparse.ErrDimensionMismatch)
	}
	return nil
}
