// Package core defines the central data model of rfsim: nets, ports,
// the Component contract, external-port specifications, and the
// CircuitModel that owns all of it.
//
// CircuitModel is built once by an external netlist parser and never
// mutated afterward; netgraph, pattern and assemble all derive
// read-only views from it. See SPEC_FULL.md §3-§4 for the full data
// model this package implements.
package core
