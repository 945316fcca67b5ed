// File: touchstone.go
// Role: TouchstoneImpedance, the Touchstone-file-backed reference
// impedance model of §6. Parsing the .s1p file itself stays an external
// collaborator (§1); this type is constructed from an already-parsed
// table of (freq, S11) samples and only performs the linear
// interpolation-with-extrapolation and the S->Z conversion.
package core

import (
	"errors"
	"sort"

	"github.com/Gjild/rfsim/numeric"
)

// ErrEmptyTouchstoneTable indicates a TouchstoneImpedance was built from
// zero samples.
var ErrEmptyTouchstoneTable = errors.New("core: touchstone table is empty")

// TouchstoneSample is one row of a one-port Touchstone table: frequency
// in Hz and the complex S11 measured at that frequency.
type TouchstoneSample struct {
	Freq float64
	S11  complex128
}

// TouchstoneImpedance interpolates (with extrapolation beyond the table
// bounds) a tabulated one-port S11 curve and converts it to a reference
// impedance via Z = Z0 * (1+S)/(1-S) (§6).
type TouchstoneImpedance struct {
	Z0      complex128 // reference impedance from the Touchstone header; default 50 Ω
	samples []TouchstoneSample
}

// NewTouchstoneImpedance builds a TouchstoneImpedance from an unordered
// sample table, sorting it by frequency once at construction. z0 of 0 is
// treated as the Touchstone-standard default of 50 Ω.
func NewTouchstoneImpedance(z0 complex128, samples []TouchstoneSample) (*TouchstoneImpedance, error) {
	if len(samples) == 0 {
		return nil, ErrEmptyTouchstoneTable
	}
	if z0 == 0 {
		z0 = complex(50, 0)
	}
	sorted := make([]TouchstoneSample, len(samples))
	copy(sorted, samples)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Freq < sorted[j].Freq })
	return &TouchstoneImpedance{Z0: z0, samples: sorted}, nil
}

// Impedance implements ImpedanceModel.
func (t *TouchstoneImpedance) Impedance(ctx *numeric.Context) (complex128, error) {
	s := t.interpolate(ctx.Freq())
	return t.Z0 * (1 + s) / (1 - s), nil
}

// interpolate returns S11 at freq via piecewise-linear interpolation
// between bracketing samples, extrapolating linearly past either edge.
func (t *TouchstoneImpedance) interpolate(freq float64) complex128 {
	n := len(t.samples)
	if n == 1 {
		return t.samples[0].S11
	}

	idx := sort.Search(n, func(i int) bool { return t.samples[i].Freq >= freq })
	var lo, hi int
	switch {
	case idx == 0:
		lo, hi = 0, 1
	case idx == n:
		lo, hi = n-2, n-1
	default:
		lo, hi = idx-1, idx
	}

	f0, f1 := t.samples[lo].Freq, t.samples[hi].Freq
	s0, s1 := t.samples[lo].S11, t.samples[hi].S11
	if f1 == f0 {
		return s0
	}
	frac := (freq - f0) / (f1 - f0)
	return s0 + complex(frac, 0)*(s1-s0)
}
