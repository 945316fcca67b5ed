// File: csr.go
// Role: compressed-sparse-row complex matrix assembled from a component
// stamp COO template (§4.3, §4.6). Duplicate (row, col) coordinates —
// expected whenever two components share a net — are summed, the
// standard MNA stamping rule.
//
// Construction follows a COO→CSR build with coordinate summation,
// generalized from a 0/1 adjacency indicator to a summed complex128
// value per coordinate.
package csparse

import (
	"fmt"
	"sort"
)

// CSR is a square dim×dim compressed-sparse-row complex matrix.
type CSR struct {
	Dim     int
	Indptr  []int     // length Dim+1
	Indices []int     // column index per nonzero, length Indptr[Dim]
	Data    []complex128
}

// BuildCSR sums duplicate (rows[k], cols[k]) coordinates and returns the
// resulting CSR of shape dim×dim. rows, cols and data must share length;
// rows/cols entries must lie in [0, dim).
//
// Complexity: O(nnz log nnz) for the coordinate sort.
func BuildCSR(dim int, rows, cols []int, data []complex128) (*CSR, error) {
	if len(rows) != len(cols) || len(rows) != len(data) {
		return nil, fmt.Errorf("BuildCSR: rows/cols/data length mismatch (%d/%d/%d): %w", len(rows), len(cols), len(data), ErrDimensionMismatch)
	}
	order := make([]int, len(rows))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if rows[ia] != rows[ib] {
			return rows[ia] < rows[ib]
		}
		return cols[ia] < cols[ib]
	})

	indptr := make([]int, dim+1)
	indices := make([]int, 0, len(order))
	values := make([]complex128, 0, len(order))

	row := 0
	i := 0
	for i < len(order) {
		r, c := rows[order[i]], cols[order[i]]
		for row < r {
			indptr[row+1] = len(indices)
			row++
		}
		sum := complex(0, 0)
		j := i
		for j < len(order) && rows[order[j]] == r && cols[order[j]] == c {
			sum += data[order[j]]
			j++
		}
		indices = append(indices, c)
		values = append(values, sum)
		indptr[row+1] = len(indices)
		i = j
	}
	for row < dim {
		indptr[row+1] = len(indices)
		row++
	}

	return &CSR{Dim: dim, Indptr: indptr, Indices: indices, Data: values}, nil
}

// At returns the value at (i, j), 0 if absent. Linear scan within the
// row; fine for the small sparse rows typical of MNA matrices.
func (c *CSR) At(i, j int) complex128 {
	for k := c.Indptr[i]; k < c.Indptr[i+1]; k++ {
		if c.Indices[k] == j {
			return c.Data[k]
		}
		if c.Indices[k] > j {
			break
		}
	}
	return 0
}

// DropRowCol returns a new CSR with row/col index `drop` removed and all
// higher indices shifted down by one, implementing ground elimination
// (§4.6 step 4). Returns the original dimension unchanged if drop < 0
// (no ground net present).
func (c *CSR) DropRowCol(drop int) *CSR {
	if drop < 0 {
		return c
	}
	newDim := c.Dim - 1
	rows := make([]int, 0, len(c.Data))
	cols := make([]int, 0, len(c.Data))
	data := make([]complex128, 0, len(c.Data))
	for i := 0; i < c.Dim; i++ {
		if i == drop {
			continue
		}
		ni := remap(i, drop)
		for k := c.Indptr[i]; k < c.Indptr[i+1]; k++ {
			j := c.Indices[k]
			if j == drop {
				continue
			}
			rows = append(rows, ni)
			cols = append(cols, remap(j, drop))
			data = append(data, c.Data[k])
		}
	}
	out, _ := BuildCSR(newDim, rows, cols, data) // shapes are correct by construction
	return out
}

func remap(idx, drop int) int {
	if idx > drop {
		return idx - 1
	}
	return idx
}

// Submatrix extracts the dense |rowIdx|×|colIdx| block at the given
// (possibly non-contiguous) row and column index lists, preserving the
// order of rowIdx/colIdx — used to carve out Y_ee, Y_ei, Y_ie, Y_ii from
// the reduced global CSR (§4.6 step 5).
func (c *CSR) Submatrix(rowIdx, colIdx []int) *Dense {
	colPos := make(map[int]int, len(colIdx))
	for pos, j := range colIdx {
		colPos[j] = pos
	}
	out := NewDense(len(rowIdx), len(colIdx))
	for outRow, i := range rowIdx {
		for k := c.Indptr[i]; k < c.Indptr[i+1]; k++ {
			if pos, ok := colPos[c.Indices[k]]; ok {
				out.SetUnchecked(outRow, pos, c.Data[k])
			}
		}
	}
	return out
}

// Fingerprint returns a hash of the structural metadata only (Indices,
// Indptr, Dim) — independent of numeric values — used as the
// factorization cache's sparsity key (§4.8).
func (c *CSR) Fingerprint() []byte {
	h := newFNV128()
	writeInt(h, c.Dim)
	for _, v := range c.Indptr {
		writeInt(h, v)
	}
	for _, v := range c.Indices {
		writeInt(h, v)
	}
	return h.Sum(nil)
}

// DataChecksum returns a cheap 64-bit aggregate of c.Data — an FNV-1a
// style fold (XOR, then multiply by the FNV prime) of the per-entry
// complexBits words — used as the factorization cache's second-level key
// (§4.8). Each step is a bijection on the accumulator, so changing any
// single value always changes the result.
func (c *CSR) DataChecksum() uint64 {
	acc := uint64(14695981039346656037)
	for _, v := range c.Data {
		acc ^= complexBits(v)
		acc *= 1099511628211
	}
	return acc
}
