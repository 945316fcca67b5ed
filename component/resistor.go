// File: resistor.go
// Role: Resistor, grounded on original_source/components/resistor.py:
// Z = R, independent of frequency.
package component

import "github.com/Gjild/rfsim/core"

// Resistor is a two-port series resistor, Z = R.
type Resistor struct{ *seriesImpedance }

// NewResistor builds a Resistor between nets p1 and p2. r is the
// resistance parameter's unresolved expression ("1000", "1k", "R_base*2", ...).
func NewResistor(id, p1, p2, r string) *Resistor {
	key := qualify(id, "R")
	return &Resistor{&seriesImpedance{
		id: id, p1: p1, p2: p2,
		paramKey: key,
		params:   map[string]string{key: r},
		zOf:      func(_, value float64) complex128 { return complex(value, 0) },
	}}
}

var _ core.Component = (*Resistor)(nil)
