// File: impedance.go
// Role: the shared two-port series-impedance stamp used by Resistor,
// Capacitor and Inductor — Y = (1/Z)·[[1,-1],[-1,1]] — grounded on
// original_source/components/single_impedance_component.py's
// TwoPortSymmetricImpedanceMixin pattern, generalized to a single
// seriesImpedance helper selected by an impedanceFn rather than Python
// subclassing (§9's "inheritance with mixins... modeled with tagged
// variants selected at build time" redesign note).
package component

import (
	"fmt"

	"github.com/Gjild/rfsim/core"
	"github.com/Gjild/rfsim/csparse"
	"github.com/Gjild/rfsim/numeric"
)

// impedanceFn computes a component's series impedance at a context,
// given the resolved value of its defining parameter (resistance,
// capacitance, or inductance).
type impedanceFn func(freq, value float64) complex128

// seriesImpedance is the shared implementation backing Resistor,
// Capacitor and Inductor: a two-port element whose Y submatrix is
// (1/Z)·[[1,-1],[-1,1]] for Z derived from one resolved parameter.
type seriesImpedance struct {
	id       string
	p1, p2   string
	paramKey string
	params   map[string]string
	zOf      impedanceFn
}

func (s *seriesImpedance) ID() string { return s.id }

func (s *seriesImpedance) Ports() []core.Port {
	return []core.Port{{Name: "1", Net: s.p1}, {Name: "2", Net: s.p2}}
}

func (s *seriesImpedance) Params() map[string]string { return s.params }

func (s *seriesImpedance) Ymatrix(ctx *numeric.Context) (*csparse.Dense, error) {
	value, ok := ctx.Lookup(s.paramKey)
	if !ok {
		return nil, fmt.Errorf("component %s: parameter %s: %w", s.id, s.paramKey, ErrMissingParam)
	}
	z := s.zOf(ctx.Freq(), value)
	if z == 0 {
		return nil, fmt.Errorf("component %s: zero impedance is not invertible", s.id)
	}
	y := 1 / z
	m := csparse.NewDense(2, 2)
	m.SetUnchecked(0, 0, y)
	m.SetUnchecked(0, 1, -y)
	m.SetUnchecked(1, 0, -y)
	m.SetUnchecked(1, 1, y)
	return m, nil
}
