// File: dense.go
// Role: small dense complex matrix used for per-component Y submatrices
// and for the reduced external-port matrices passed to package convert.
//
// Layout: row-major []complex128, bounds-checked accessors, no hidden
// resizing.
package csparse

import (
	"errors"
	"fmt"
)

// ErrDimensionMismatch indicates two matrices have incompatible shapes
// for the requested operation.
var ErrDimensionMismatch = errors.New("csparse: dimension mismatch")

// ErrIndexOutOfRange indicates an At/Set call addressed a cell outside
// the matrix bounds.
var ErrIndexOutOfRange = errors.New("csparse: index out of range")

// Dense is a row-major n×n (or n×m) complex matrix.
type Dense struct {
	rows, cols int
	data       []complex128
}

// NewDense allocates a zero-filled rows×cols Dense matrix.
func NewDense(rows, cols int) *Dense {
	return &Dense{rows: rows, cols: cols, data: make([]complex128, rows*cols)}
}

// Identity returns the n×n identity matrix.
func Identity(n int) *Dense {
	m := NewDense(n, n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.cols }

// At returns the value at (i, j), or an error if out of range.
func (m *Dense) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("Dense.At(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	return m.data[i*m.cols+j], nil
}

// Set assigns value to (i, j), or returns an error if out of range.
func (m *Dense) Set(i, j int, v complex128) error {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return fmt.Errorf("Dense.Set(%d,%d): %w", i, j, ErrIndexOutOfRange)
	}
	m.data[i*m.cols+j] = v
	return nil
}

// AtUnchecked returns the value at (i,j) without bounds checking; callers
// in hot assembly/solve loops use this after validating shapes once.
func (m *Dense) AtUnchecked(i, j int) complex128 { return m.data[i*m.cols+j] }

// SetUnchecked assigns value to (i,j) without bounds checking.
func (m *Dense) SetUnchecked(i, j int, v complex128) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]complex128, len(m.data))}
	copy(out.data, m.data)
	return out
}

// Transpose returns m^T.
func (m *Dense) Transpose() *Dense {
	out := NewDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.SetUnchecked(j, i, m.AtUnchecked(i, j))
		}
	}
	return out
}

// ConjugateTranspose returns m^H, the conjugate transpose. Used by
// convert's pseudoinverse fallback to form the normal equations
// A^H·A·x = A^H·b of an exhausted regularized solve.
func (m *Dense) ConjugateTranspose() *Dense {
	out := NewDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.SetUnchecked(j, i, conjugate(m.AtUnchecked(i, j)))
		}
	}
	return out
}

// Sub returns m - other. Both must share shape.
func (m *Dense) Sub(other *Dense) (*Dense, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Dense.Sub: %dx%d vs %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	out := NewDense(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] - other.data[i]
	}
	return out, nil
}

// Add returns m + other. Both must share shape.
func (m *Dense) Add(other *Dense) (*Dense, error) {
	if m.rows != other.rows || m.cols != other.cols {
		return nil, fmt.Errorf("Dense.Add: %dx%d vs %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	out := NewDense(m.rows, m.cols)
	for i := range m.data {
		out.data[i] = m.data[i] + other.data[i]
	}
	return out, nil
}

// MatMul returns m · other. m.cols must equal other.rows.
func (m *Dense) MatMul(other *Dense) (*Dense, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("Dense.MatMul: %dx%d · %dx%d: %w", m.rows, m.cols, other.rows, other.cols, ErrDimensionMismatch)
	}
	out := NewDense(m.rows, other.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			aik := m.AtUnchecked(i, k)
			if aik == 0 {
				continue
			}
			for j := 0; j < other.cols; j++ {
				out.data[i*out.cols+j] += aik * other.AtUnchecked(k, j)
			}
		}
	}
	return out, nil
}

// AddDiagonal adds reg to every diagonal entry of m in place. Used by
// convert's regularized-inversion fallback.
func (m *Dense) AddDiagonal(reg complex128) {
	n := m.rows
	if m.cols < n {
		n = m.cols
	}
	for i := 0; i < n; i++ {
		m.data[i*m.cols+i] += reg
	}
}

// IsHermitian reports whether m equals its own conjugate transpose
// within tol (element-wise), used by convert to prefer Cholesky-style
// handling when it applies.
func (m *Dense) IsHermitian(tol float64) bool {
	if m.rows != m.cols {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for j := i; j < m.cols; j++ {
			a := m.AtUnchecked(i, j)
			b := m.AtUnchecked(j, i)
			d := a - conjugate(b)
			if real(d)*real(d)+imag(d)*imag(d) > tol*tol {
				return false
			}
		}
	}
	return true
}

func conjugate(z complex128) complex128 { return complex(real(z), -imag(z)) }
