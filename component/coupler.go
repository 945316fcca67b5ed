// File: coupler.go
// Role: DirectionalCoupler, grounded on
// original_source/components/directional_coupler.py: an ideal lossless
// 4-port coupler built from its natural S-matrix and converted to Y via
// package convert rather than returned directly as S.
package component

import (
	"fmt"
	"math"

	"github.com/Gjild/rfsim/convert"
	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
)

// DirectionalCoupler is an ideal 4-port coupler: port 1 input, port 2
// through, port 3 coupled, port 4 isolated.
type DirectionalCoupler struct {
	id             string
	p1, p2, p3, p4 string
	params         map[string]string
}

// NewDirectionalCoupler builds a DirectionalCoupler. couplingDB and
// lossDB are unresolved expressions for coupling and insertion loss in
// dB; both default to the original's values ("10", "0") when empty.
func NewDirectionalCoupler(id, p1, p2, p3, p4, couplingDB, lossDB string) *DirectionalCoupler {
	if couplingDB == "" {
		couplingDB = "10"
	}
	if lossDB == "" {
		lossDB = "0"
	}
	return &DirectionalCoupler{
		id: id, p1: p1, p2: p2, p3: p3, p4: p4,
		params: map[string]string{qualify(id, "coupling_dB"): couplingDB, qualify(id, "loss_dB"): lossDB},
	}
}

func (d *DirectionalCoupler) ID() string { return d.id }

func (d *DirectionalCoupler) Ports() []core.Port {
	return []core.Port{
		{Name: "1", Net: d.p1}, {Name: "2", Net: d.p2},
		{Name: "3", Net: d.p3}, {Name: "4", Net: d.p4},
	}
}

func (d *DirectionalCoupler) Params() map[string]string { return d.params }

func (d *DirectionalCoupler) Ymatrix(ctx *numeric.Context) (*csparse.Dense, error) {
	couplingDB, ok := ctx.Lookup(qualify(d.id, "coupling_dB"))
	if !ok {
		return nil, fmt.Errorf("component %s: parameter coupling_dB: %w", d.id, ErrMissingParam)
	}
	lossDB, ok := ctx.Lookup(qualify(d.id, "loss_dB"))
	if !ok {
		return nil, fmt.Errorf("component %s: parameter loss_dB: %w", d.id, ErrMissingParam)
	}
	k := math.Pow(10, -couplingDB/20.0)
	if k < 0 || k > 1 {
		return nil, fmt.Errorf("component %s: coupling factor %.4f out of [0,1]; check coupling_dB", d.id, k)
	}
	mainAmp := math.Sqrt(1 - k*k)
	a := math.Pow(10, -lossDB/20.0)

	s := csparse.NewDense(4, 4)
	s.SetUnchecked(0, 1, complex(mainAmp*a, 0))
	s.SetUnchecked(1, 0, complex(mainAmp*a, 0))
	s.SetUnchecked(0, 2, complex(0, k*a))
	s.SetUnchecked(2, 0, complex(0, k*a))
	s.SetUnchecked(1, 3, complex(0, k*a))
	s.SetUnchecked(3, 1, complex(0, k*a))
	s.SetUnchecked(2, 3, complex(mainAmp*a, 0))
	s.SetUnchecked(3, 2, complex(mainAmp*a, 0))

	z0 := complex(lookupOrDefault(ctx, "Z0", 50), 0)
	y, err := convert.StoY(s, uniformZ0(z0, 4))
	if err != nil {
		return nil, fmt.Errorf("component %s: S->Y: %w", d.id, err)
	}
	return y, nil
}

var _ core.Component = (*DirectionalCoupler)(nil)
