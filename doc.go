// Package rfsim is the numerical core of a linear RF network simulator.
//
// What is rfsim?
//
//	A pure-compute library that turns a netlist of multi-port components
//	into scattering (S) parameters across a frequency/parameter sweep:
//
//	  • Parameter resolution: literals, unit-bearing literals, symbolic formulas
//	  • Topology compilation: a reusable, numeric-free stamp pattern
//	  • Assembly & reduction: MNA stamping, ground elimination, Schur reduction
//	  • Parallel sweep: Cartesian expansion with LU factorization reuse
//
// Under the hood, everything is organized under small, single-purpose
// subpackages:
//
//	core/       — CircuitModel, Component contract, ports and nets
//	resolver/   — parameter resolution (§4.1 of the design notes)
//	netgraph/   — net deduplication and node indexing
//	pattern/    — topology-only stamp pattern compilation
//	numeric/    — immutable (freq, params) evaluation context
//	csparse/    — complex CSR assembly and LU-based solving
//	assemble/   — stamping, ground elimination, Schur reduction
//	convert/    — Y/S/Z conversions with per-port reference impedances
//	cache/      — factorization cache keyed by sparsity + data checksum
//	sweep/      — parallel sweep driver over the Cartesian evaluation set
//	component/  — built-in Component implementations
//	netbuilder/ — synthetic netlists for tests and benchmarks
//
// rfsim never reads netlist files, parses Touchstone data, or exposes a
// command-line interface; those are external collaborators.
//
//	go get github.com/Gjild/rfsim
package rfsim
