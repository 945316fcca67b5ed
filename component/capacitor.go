// File: capacitor.go
// Role: Capacitor, grounded on original_source/components/capacitor.py:
// Z = 1/(j*omega*C), omega = 2*pi*freq.
package component

import (
	"math"

	"github.com/Gjild/rfsim/core"
)

// Capacitor is a two-port series capacitor, Z = 1/(j·2π·freq·C).
type Capacitor struct{ *seriesImpedance }

// NewCapacitor builds a Capacitor between nets p1 and p2. c is the
// capacitance parameter's unresolved expression.
func NewCapacitor(id, p1, p2, c string) *Capacitor {
	key := qualify(id, "C")
	return &Capacitor{&seriesImpedance{
		id: id, p1: p1, p2: p2,
		paramKey: key,
		params:   map[string]string{key: c},
		zOf: func(freq, value float64) complex128 {
			omega := 2 * math.Pi * freq
			return complex(0, -1/(omega*value))
		},
	}}
}

var _ core.Component = (*Capacitor)(nil)
