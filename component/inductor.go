// File: inductor.go
// Role: Inductor, grounded on original_source/components/inductor.py:
// Z = j*omega*L, omega = 2*pi*freq.
package component

import (
	"math"

	"github.com/Gjild/rfsim/core"
)

// Inductor is a two-port series inductor, Z = j·2π·freq·L.
type Inductor struct{ *seriesImpedance }

// NewInductor builds an Inductor between nets p1 and p2. l is the
// inductance parameter's unresolved expression.
func NewInductor(id, p1, p2, l string) *Inductor {
	key := qualify(id, "L")
	return &Inductor{&seriesImpedance{
		id: id, p1: p1, p2: p2,
		paramKey: key,
		params:   map[string]string{key: l},
		zOf: func(freq, value float64) complex128 {
			omega := 2 * math.Pi * freq
			return complex(0, omega*value)
		},
	}}
}

var _ core.Component = (*Inductor)(nil)
