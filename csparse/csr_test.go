package csparse_test

import (
	"testing"

	"github.com/Gjild/rfsim/csparse"
	"github.com/stretchr/testify/require"
)

func TestBuildCSRSumsDuplicates(t *testing.T) {
	// Two components both stamp (1,1): 1/100 and 1/50 siemens.
	rows := []int{0, 0, 1, 1, 1}
	cols := []int{0, 1, 0, 1, 1}
	data := []complex128{1.0 / 100, -1.0 / 100, -1.0 / 100, 1.0 / 100, 1.0 / 50}

	c, err := csparse.BuildCSR(2, rows, cols, data)
	require.NoError(t, err)
	require.InDelta(t, real(c.At(1, 1)), 1.0/100+1.0/50, 1e-12)
	require.InDelta(t, real(c.At(0, 1)), -1.0/100, 1e-12)
}

func TestDropRowColRemapsIndices(t *testing.T) {
	rows := []int{0, 0, 1, 1, 2, 2}
	cols := []int{0, 1, 1, 2, 0, 2}
	data := []complex128{1, -1, 2, -2, -1, 3}
	c, err := csparse.BuildCSR(3, rows, cols, data)
	require.NoError(t, err)

	reduced := c.DropRowCol(1) // drop ground at index 1
	require.Equal(t, 2, reduced.Dim)
	// Original (2,0) -> (1,0) and (2,2) -> (1,1) after remap.
	require.Equal(t, complex(-1, 0), reduced.At(1, 0))
	require.Equal(t, complex(3, 0), reduced.At(1, 1))
}

func TestFingerprintStableAcrossRebuilds(t *testing.T) {
	rows := []int{0, 1}
	cols := []int{1, 0}
	data1 := []complex128{1, 2}
	data2 := []complex128{5, 9}

	a, err := csparse.BuildCSR(2, rows, cols, data1)
	require.NoError(t, err)
	b, err := csparse.BuildCSR(2, rows, cols, data2)
	require.NoError(t, err)

	require.Equal(t, a.Fingerprint(), b.Fingerprint(), "same sparsity pattern must fingerprint identically regardless of data")
	require.NotEqual(t, a.DataChecksum(), b.DataChecksum(), "different data must checksum differently")
}

func TestSubmatrixPreservesOrder(t *testing.T) {
	rows := []int{0, 1, 2}
	cols := []int{0, 1, 2}
	data := []complex128{1, 2, 3}
	c, err := csparse.BuildCSR(3, rows, cols, data)
	require.NoError(t, err)

	sub := c.Submatrix([]int{2, 0}, []int{2, 0})
	v, err := sub.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex(3, 0), v)
	v, err = sub.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, complex(1, 0), v)
}
