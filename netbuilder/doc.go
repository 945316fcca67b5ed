// Package netbuilder generates synthetic core.CircuitModel instances for
// sweep/cache benchmarks and stress tests: deterministic, seeded,
// functional-style constructors rather than a runtime graph-generation
// DSL.
//
// Ladder builds an n-section RC ladder; RandomMesh builds an
// Erdős–Rényi-style random resistor mesh, adapting a stable-trial-order,
// deterministic-for-a-fixed-seed RNG contract (stable vertex order,
// stable trial order, deterministic outcomes for a fixed seed) to
// resistor-mesh generation instead of graph-edge generation.
package netbuilder
