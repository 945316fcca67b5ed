// File: wilkinson.go
// Role: WilkinsonDivider, grounded on
// original_source/components/wilkinson.py: an ideal lossless 3-port
// divider/combiner built from its natural S-matrix and converted to Y.
package component

import (
	"fmt"
	"math"

	"github.com/Gjild/rfsim/convert"
	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
)

// WilkinsonDivider is an ideal 3-port divider: port 1 input, ports 2 and
// 3 equal-split outputs.
type WilkinsonDivider struct {
	id         string
	p1, p2, p3 string
	params     map[string]string
}

// NewWilkinsonDivider builds a WilkinsonDivider. lossDB is an unresolved
// expression for insertion loss in dB, defaulting to "0".
func NewWilkinsonDivider(id, p1, p2, p3, lossDB string) *WilkinsonDivider {
	if lossDB == "" {
		lossDB = "0"
	}
	return &WilkinsonDivider{
		id: id, p1: p1, p2: p2, p3: p3,
		params: map[string]string{qualify(id, "loss_dB"): lossDB},
	}
}

func (w *WilkinsonDivider) ID() string { return w.id }

func (w *WilkinsonDivider) Ports() []core.Port {
	return []core.Port{{Name: "1", Net: w.p1}, {Name: "2", Net: w.p2}, {Name: "3", Net: w.p3}}
}

func (w *WilkinsonDivider) Params() map[string]string { return w.params }

func (w *WilkinsonDivider) Ymatrix(ctx *numeric.Context) (*csparse.Dense, error) {
	lossDB, ok := ctx.Lookup(qualify(w.id, "loss_dB"))
	if !ok {
		return nil, fmt.Errorf("component %s: parameter loss_dB: %w", w.id, ErrMissingParam)
	}
	a := math.Pow(10, -lossDB/20.0)
	t := complex(a/math.Sqrt2, 0)

	s := csparse.NewDense(3, 3)
	s.SetUnchecked(0, 1, t)
	s.SetUnchecked(0, 2, t)
	s.SetUnchecked(1, 0, t)
	s.SetUnchecked(2, 0, t)

	z0 := complex(lookupOrDefault(ctx, "Z0", 50), 0)
	y, err := convert.StoY(s, uniformZ0(z0, 3))
	if err != nil {
		return nil, fmt.Errorf("component %s: S->Y: %w", w.id, err)
	}
	return y, nil
}

var _ core.Component = (*WilkinsonDivider)(nil)
