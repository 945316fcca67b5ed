// File: random_mesh.go
// Role: RandomMesh, an Erdős–Rényi-style random resistor mesh generator
// with a stable-vertex-order, stable-trial-order, deterministic-for-a-
// fixed-seed contract: each unordered vertex pair {i,j}, i<j, is an
// independent Bernoulli trial of probability p for a series resistor.
package netbuilder

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/Gjild/rfsim/component"
	"github.com/Gjild/rfsim/core"
)

const (
	minMeshVertices = 2
	probMin         = 0.0
	probMax         = 1.0
)

// RandomMesh builds a random resistor mesh over n vertices (nets
// "n0".."n(n-1)"), including each unordered pair {i,j}, i<j, as a series
// resistor valued r independently with probability p. Vertex 0 and
// vertex n-1 are exposed as external ports "in" and "out" with reference
// impedance z0. Trials are drawn in stable i-asc, j-asc order from a
// *rand.Rand seeded by seed, so the resulting topology is fully
// determined by (n, p, seed).
//
// RandomMesh does not guarantee the resulting graph is connected.
// assemble.Build rejects a mesh in which an external vertex has no
// resistor (core.ErrUndeclaredExternalNet) or a resistor is unreachable
// from both external vertices (core.ErrDisconnectedGraph); a mesh whose
// two external vertices lie in separate pieces is accepted.
func RandomMesh(n int, p float64, seed int64, r string, z0 complex128) (*core.CircuitModel, error) {
	if n < minMeshVertices {
		return nil, fmt.Errorf("RandomMesh: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < probMin || p > probMax {
		return nil, fmt.Errorf("RandomMesh: p=%.6f: %w", p, ErrInvalidProbability)
	}

	nets := make([]string, n)
	for i := 0; i < n; i++ {
		nets[i] = "n" + strconv.Itoa(i)
	}

	model := &core.CircuitModel{
		GlobalParameters: map[string]string{"R": r},
	}

	rng := rand.New(rand.NewSource(seed))
	edgeIdx := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			include := p == 1.0 || rng.Float64() <= p
			if !include {
				continue
			}
			id := "R" + strconv.Itoa(edgeIdx)
			edgeIdx++
			res := component.NewResistor(id, nets[i], nets[j], "R")
			model.Components = append(model.Components, res)
			model.Connections = append(model.Connections,
				core.Connection{ComponentID: id, PortName: "1", NetName: nets[i]},
				core.Connection{ComponentID: id, PortName: "2", NetName: nets[j]},
			)
		}
	}

	model.ExternalPorts = []core.ExternalPortSpec{
		{Name: "in", NetName: nets[0], Impedance: core.ConstantImpedance(z0)},
		{Name: "out", NetName: nets[n-1], Impedance: core.ConstantImpedance(z0)},
	}

	return model, nil
}
