// File: ladder.go
// Role: Ladder, a deterministic n-section RC ladder generator used by
// sweep/cache benchmarks (§8 property 7's "sweep that varies only one
// component's value" is easiest to construct and reason about over a
// ladder's strictly linear internal-internal sparsity pattern).
package netbuilder

import (
	"fmt"
	"strconv"

	"github.com/Gjild/rfsim/component"
	"github.com/Gjild/rfsim/core"
)

// Ladder builds an n-section series-R / shunt-C ladder between external
// ports "in" and "out": nets n0="in", n1, ..., nn="out", a series
// resistor valued r between consecutive nets, and a shunt capacitor
// valued c from each internal net (n1..n(n-1)) to "gnd". r and c are
// unresolved parameter expressions shared by every section; z0 is the
// reference impedance applied to both external ports.
func Ladder(n int, r, c string, z0 complex128) (*core.CircuitModel, error) {
	if n < 1 {
		return nil, fmt.Errorf("Ladder: n=%d: %w", n, ErrTooFewSections)
	}

	nets := make([]string, n+1)
	nets[0] = "in"
	nets[n] = "out"
	for i := 1; i < n; i++ {
		nets[i] = "n" + strconv.Itoa(i)
	}

	model := &core.CircuitModel{
		GlobalParameters: map[string]string{"R": r, "C": c},
	}

	for i := 0; i < n; i++ {
		id := "R" + strconv.Itoa(i)
		res := component.NewResistor(id, nets[i], nets[i+1], "R")
		model.Components = append(model.Components, res)
		model.Connections = append(model.Connections,
			core.Connection{ComponentID: id, PortName: "1", NetName: nets[i]},
			core.Connection{ComponentID: id, PortName: "2", NetName: nets[i+1]},
		)
	}

	for i := 1; i < n; i++ {
		id := "C" + strconv.Itoa(i)
		capacitor := component.NewCapacitor(id, nets[i], "gnd", "C")
		model.Components = append(model.Components, capacitor)
		model.Connections = append(model.Connections,
			core.Connection{ComponentID: id, PortName: "1", NetName: nets[i]},
			core.Connection{ComponentID: id, PortName: "2", NetName: "gnd"},
		)
	}

	model.ExternalPorts = []core.ExternalPortSpec{
		{Name: "in", NetName: "in", Impedance: core.ConstantImpedance(z0)},
		{Name: "out", NetName: "out", Impedance: core.ConstantImpedance(z0)},
	}

	return model, nil
}
